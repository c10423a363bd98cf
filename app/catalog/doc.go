// Package catalog is the demo application: an item catalog API whose
// endpoints exercise every binding source and response shaping policy. It
// serves as both a usage reference and the end-to-end test surface.
package catalog
