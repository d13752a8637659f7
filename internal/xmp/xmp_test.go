package xmp_test

import (
	"testing"

	"photoaudit/internal/xmp"
)

const sampleDoc = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about=""
    xmlns:xmpMM="http://ns.adobe.com/xap/1.0/mm/"
    xmpMM:DocumentID="xmp.did:0123456789abcdef"
    xmpMM:InstanceID="xmp.iid:fedcba9876543210"/>
 </rdf:RDF>
</x:xmpmeta>`

func TestDocumentIDFromWellFormedTree(t *testing.T) {
	root, err := xmp.Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := xmp.DocumentID(root); got != "xmp.did:0123456789abcdef" {
		t.Fatalf("unexpected document ID: %q", got)
	}
}

func TestDocumentIDPicksDescriptionCarryingTheAttribute(t *testing.T) {
	doc := `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/"/>
  <rdf:Description rdf:about=""
    xmlns:xmpMM="http://ns.adobe.com/xap/1.0/mm/"
    xmpMM:DocumentID="xmp.did:second"/>
 </rdf:RDF>
</x:xmpmeta>`
	root, err := xmp.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := xmp.DocumentID(root); got != "xmp.did:second" {
		t.Fatalf("unexpected document ID: %q", got)
	}
}

func TestDocumentIDAbsentWhenPathMissing(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"wrong root", `<other><rdf:RDF xmlns:rdf="ns"/></other>`},
		{"no rdf", `<x:xmpmeta xmlns:x="adobe:ns:meta/"><body/></x:xmpmeta>`},
		{"no description", `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="ns"/></x:xmpmeta>`},
		{"no document id", `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="ns"><rdf:Description rdf:about=""/></rdf:RDF></x:xmpmeta>`},
		{"empty document id", `<x:xmpmeta xmlns:x="adobe:ns:meta/"><rdf:RDF xmlns:rdf="ns"><rdf:Description xmlns:m="ns2" m:DocumentID=""/></rdf:RDF></x:xmpmeta>`},
	}
	for _, tc := range cases {
		root, err := xmp.Parse([]byte(tc.doc))
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", tc.name, err)
		}
		if got := xmp.DocumentID(root); got != "" {
			t.Fatalf("%s: expected absent document ID, got %q", tc.name, got)
		}
	}
}

func TestDocumentIDNilTree(t *testing.T) {
	if got := xmp.DocumentID(nil); got != "" {
		t.Fatalf("expected empty ID for nil tree, got %q", got)
	}
}

func TestParseRejectsMalformedXML(t *testing.T) {
	if _, err := xmp.Parse([]byte("<unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestChildAndAttrChainSafelyOverNil(t *testing.T) {
	var n *xmp.Node
	if n.Child("anything") != nil {
		t.Fatal("nil receiver should yield nil child")
	}
	if _, ok := n.Attr("anything"); ok {
		t.Fatal("nil receiver should report absent attribute")
	}
}
