package ui

import "testing"

func TestToastFadesOut(t *testing.T) {
	toast := NewToast()
	if toast.Visible() {
		t.Fatal("new toast must be hidden")
	}

	toast.Show("Brush: water")
	if !toast.Visible() || toast.Alpha() != 1 {
		t.Fatalf("shown toast should be fully opaque, alpha=%v", toast.Alpha())
	}
	if toast.Message() != "Brush: water" {
		t.Fatalf("unexpected message %q", toast.Message())
	}

	toast.Update(DefaultToastDuration / 2)
	if a := toast.Alpha(); a <= 0.7 || a >= 0.8 {
		t.Fatalf("ease-in fade should be near 0.75 halfway, got %v", a)
	}

	toast.Update(DefaultToastDuration)
	if toast.Visible() {
		t.Fatalf("toast should be hidden after its duration, alpha=%v", toast.Alpha())
	}
}

func TestToastShowRestartsFade(t *testing.T) {
	toast := NewToast()
	toast.Show("Erase on")
	toast.Update(DefaultToastDuration * 0.9)
	toast.Show("Erase off")
	if toast.Alpha() != 1 || toast.Message() != "Erase off" {
		t.Fatalf("Show must restart the fade, alpha=%v message=%q", toast.Alpha(), toast.Message())
	}
}

func TestToastUpdateWhenIdle(t *testing.T) {
	toast := NewToast()
	toast.Update(1)
	if toast.Visible() {
		t.Fatal("idle toast must stay hidden")
	}
}
