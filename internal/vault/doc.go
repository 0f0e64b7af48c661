// Package vault provides the storage collaborators the engines work
// against: document stores with compare-and-swap writes, directory
// operations, a markdown backlink index, and backlink-aware folder
// cleanup.
package vault
