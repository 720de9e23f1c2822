package msdf

import (
	"errors"
	"testing"
)

func TestNewPixmapRejectsNonPositiveDimensions(t *testing.T) {
	if _, err := NewPixmap[GrayF32](0, 4); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewPixmap[GrayF32](4, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestNewPixmapFromRejectsSizeMismatch(t *testing.T) {
	_, err := NewPixmapFrom(2, 2, make([]GrayF32, 3))
	if err == nil {
		t.Fatal("expected error for size mismatch")
	}
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("error = %v, want wrapping ErrSizeMismatch", err)
	}
}

func TestPixmapIndexIsRowMajor(t *testing.T) {
	pm, err := NewPixmap[GrayU8](4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.Index(1, 2); got != 1+2*4 {
		t.Errorf("Index(1,2) = %d, want %d", got, 1+2*4)
	}
}

func TestPixmapSetAt(t *testing.T) {
	pm, err := NewPixmap[GrayU8](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	pm.Set(1, 1, GrayU8{Gray: 200})
	if got := pm.At(1, 1); got.Gray != 200 {
		t.Errorf("At(1,1) = %+v, want Gray=200", got)
	}
	if got := pm.At(0, 0); got.Gray != 0 {
		t.Errorf("At(0,0) = %+v, want zero value", got)
	}
}

func TestSaturateByteClampsRange(t *testing.T) {
	if got := saturateByte(-1); got != 0 {
		t.Errorf("saturateByte(-1) = %d, want 0", got)
	}
	if got := saturateByte(2); got != 255 {
		t.Errorf("saturateByte(2) = %d, want 255", got)
	}
	if got := saturateByte(0.5); got != 128 {
		t.Errorf("saturateByte(0.5) = %d, want 128", got)
	}
}

func TestEncodeGrayU8Saturates(t *testing.T) {
	if got := EncodeGrayU8(-1).Gray; got != 0 {
		t.Errorf("EncodeGrayU8(-1).Gray = %d, want 0", got)
	}
	if got := EncodeGrayU8(2).Gray; got != 255 {
		t.Errorf("EncodeGrayU8(2).Gray = %d, want 255", got)
	}
}

func TestEncodeRGBAF32PreservesAlpha(t *testing.T) {
	p := EncodeRGBAF32(0.1, 0.2, 0.3, 0.75)
	if p.A != 0.75 {
		t.Errorf("EncodeRGBAF32 alpha = %v, want 0.75", p.A)
	}
}
