package xmp

// DocumentID extracts the xmpMM:DocumentID attribute from a parsed side-car
// tree. The expected shape is fixed:
//
//	x:xmpmeta > rdf:RDF > rdf:Description @xmpMM:DocumentID
//
// Any missing step, including a nil tree or a document with a different
// root, yields the empty string. Absence is a valid outcome, not an error;
// catalogs regularly contain photos whose side-car predates document IDs.
func DocumentID(root *Node) string {
	if !root.Is("xmpmeta") {
		return ""
	}
	rdf := root.Child("RDF")
	if rdf == nil {
		return ""
	}
	var id string
	rdf.EachChild("Description", func(desc *Node) bool {
		if value, ok := desc.Attr("DocumentID"); ok && value != "" {
			id = value
			return false
		}
		return true
	})
	return id
}
