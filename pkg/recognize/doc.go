// Package recognize implements the family of manufacturing-feature
// recognizers that traverse an aag.Graph and the fixed orchestration
// order that threads a shared excluded-faces set between them: fillets
// run first and exclude their faces from hole/shaft candidacy;
// chamfers, thin walls, and cavities run without excluding anything.
package recognize
