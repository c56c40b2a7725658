// Package sweep implements the archiving passes. A forward pass moves loose
// Desktop and Downloads entries into a dated archive subtree grouped by
// category; a repair pass walks existing subtrees and restores the category
// structure that cloud syncing tends to flatten.
package sweep
