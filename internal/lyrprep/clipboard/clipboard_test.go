package clipboard

import (
	"errors"
	"testing"
)

func TestSystem_Unsupported(t *testing.T) {
	s := &System{unsupported: true}

	if err := s.WriteAll("text"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
}
