package graphics

import "testing"

func TestShadow_Sigma(t *testing.T) {
	s := Shadow{BlurRadius: 4}
	if got := s.Sigma(); got != 2 {
		t.Errorf("expected sigma 2, got %v", got)
	}
}

func TestShadow_SigmaNonPositiveBlur(t *testing.T) {
	if got := (Shadow{BlurRadius: 0}).Sigma(); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := (Shadow{BlurRadius: -1}).Sigma(); got != 0 {
		t.Errorf("expected 0 for negative blur, got %v", got)
	}
}

func TestShadow_HasColor(t *testing.T) {
	if (Shadow{}).HasColor() {
		t.Error("zero color means no explicit color")
	}
	if !(Shadow{Color: ColorBlack}).HasColor() {
		t.Error("expected an explicit color to be reported")
	}
}
