// Package engine orchestrates one recognition run end to end: load
// config, build the AAG, run the selected recognizers in their fixed
// order, tessellate a mesh, and hand the caller a single Result. It is
// the CLI's only dependency on the recognition core.
package engine
