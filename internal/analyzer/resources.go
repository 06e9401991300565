package analyzer

// ResourceInventory counts the static resources the page references.
type ResourceInventory struct {
	Images      int `json:"images"`
	ExternalCSS int `json:"css_external"`
	InternalCSS int `json:"css_internal"`
	ExternalJS  int `json:"js_external"`
	InternalJS  int `json:"js_internal"`
}

// ExtractResources tallies images, stylesheets and scripts.
func ExtractResources(d *Document) ResourceInventory {
	return ResourceInventory{
		Images:      d.Find("img").Length(),
		ExternalCSS: d.Find(`link[rel="stylesheet"]`).Length(),
		InternalCSS: d.Find("style").Length(),
		ExternalJS:  d.Find("script[src]").Length(),
		InternalJS:  d.Find("script").Length() - d.Find("script[src]").Length(),
	}
}
