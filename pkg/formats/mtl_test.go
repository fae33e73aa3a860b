package formats

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMTL(t *testing.T) {
	data := `# exported
newmtl hull
Ka 0.2 0.2 0.2
Kd 0.5
Ks 1 1 1
Ns 32
d 0.75
illum 2
map_Ka hull_ao.png
map_Kd -s 1 1 1 hull_diffuse.png
map_Ks hull_spec.tga

newmtl sail
Tr 0.25
map_Kd sail.png
`
	mats, err := ParseMTL(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseMTL failed: %v", err)
	}
	if len(mats) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(mats))
	}

	hull := mats[0]
	if hull.Name != "hull" {
		t.Errorf("expected name 'hull', got %q", hull.Name)
	}
	if hull.Diffuse[0] != 0.5 || hull.Diffuse[1] != 0.5 || hull.Diffuse[2] != 0.5 {
		t.Errorf("expected grey diffuse 0.5, got %v", hull.Diffuse)
	}
	if hull.Shininess != 32 {
		t.Errorf("expected shininess 32, got %f", hull.Shininess)
	}
	if hull.Dissolve != 0.75 {
		t.Errorf("expected dissolve 0.75, got %f", hull.Dissolve)
	}
	if hull.Illum != 2 {
		t.Errorf("expected illum 2, got %d", hull.Illum)
	}

	textures := hull.Textures()
	want := []string{"hull_ao.png", "hull_diffuse.png", "hull_spec.tga"}
	for i := range want {
		if textures[i] != want[i] {
			t.Errorf("slot %d: expected %q, got %q", i, want[i], textures[i])
		}
	}

	sail := mats[1]
	if sail.Dissolve != 0.75 {
		t.Errorf("expected Tr 0.25 to give dissolve 0.75, got %f", sail.Dissolve)
	}
	if sail.AmbientTexture != "" || sail.SpecularTexture != "" {
		t.Errorf("expected only a diffuse texture, got ambient %q specular %q", sail.AmbientTexture, sail.SpecularTexture)
	}
}

func TestParseMTL_PropertyBeforeNewmtl(t *testing.T) {
	_, err := ParseMTL(strings.NewReader("Kd 1 1 1\nnewmtl late\n"))
	if !errors.Is(err, ErrMTLNoMaterial) {
		t.Errorf("expected ErrMTLNoMaterial, got %v", err)
	}
}

func TestParseMTL_BadNumber(t *testing.T) {
	_, err := ParseMTL(strings.NewReader("newmtl a\nNs shiny\n"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to name line 2, got %q", err.Error())
	}
}
