// Package reconcile compares the current site list with an imported one.
//
// Reconcile places every imported site in exactly one of Unchanged, Newer,
// Older, Conflicts or Added, and every current site without an imported
// counterpart in Missing. Nothing is merged automatically; Apply folds the
// buckets the user picked back into the current list.
package reconcile
