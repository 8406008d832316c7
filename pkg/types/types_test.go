package types

import "testing"

func TestDepthLayerOrder(t *testing.T) {
	want := []string{
		"water", "ground", "soil", "soil-water", "rain-floor", "house-bottom",
		"ground-plant", "main", "house-top", "fruit", "rain-drops",
	}

	layers := AllDepthLayers()
	if len(layers) != len(want) {
		t.Fatalf("expected %d layers, got %d", len(want), len(layers))
	}
	for i, l := range layers {
		if l.String() != want[i] {
			t.Errorf("layer %d: expected %s, got %s", i, want[i], l)
		}
		if i > 0 && !(layers[i-1] < l) {
			t.Errorf("layers not strictly ascending at %d", i)
		}
	}
}

func TestParseDepthLayer(t *testing.T) {
	tests := []struct {
		name    string
		want    DepthLayer
		wantErr bool
	}{
		{"house-bottom", LayerHouseBottom, false},
		{"main", LayerMain, false},
		{"rain-drops", LayerRainDrops, false},
		{"sky", LayerMain, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDepthLayer(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDepthLayer(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDepthLayer(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if DepthLayer(99).Valid() {
		t.Error("DepthLayer(99) should be invalid")
	}
}

func TestCropTypeText(t *testing.T) {
	var c CropType
	if err := c.UnmarshalText([]byte("tomato")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c != CropTomato {
		t.Errorf("expected tomato, got %v", c)
	}

	if err := c.UnmarshalText([]byte("pumpkin")); err == nil {
		t.Error("expected error for unknown crop")
	}

	text, _ := CropCorn.MarshalText()
	if string(text) != "corn" {
		t.Errorf("expected corn, got %s", text)
	}
}
