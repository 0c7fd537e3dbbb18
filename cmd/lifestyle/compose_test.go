package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestComposeFromFlags(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "compose",
		"--title", "Hello World",
		"--images-dir", filepath.Join(dir, "used"),
		"--output-dir", filepath.Join(dir, "product"),
		"--icon", filepath.Join(dir, "bookmark.png"),
		"--title-font", filepath.Join(dir, "none.ttf"),
		"--top-left-caption", "Tren", "--top-left-image", "a.jpg",
		"--top-right-caption", "Dumbell", "--top-right-image", "b.jpg",
		"--bottom-left-caption", "Alcohal", "--bottom-left-image", "c.jpg",
		"--bottom-right-caption", "FitMaxAi", "--bottom-right-image", "d.jpg",
	)
	if err != nil {
		t.Fatalf("compose: %v\n%s", err, out)
	}
	want := filepath.Join(dir, "product", "output1.jpg")
	if !strings.Contains(out, "Image saved as "+want) {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "warning: image top_left") {
		t.Errorf("missing image warning in %q", out)
	}
	if _, err := os.Stat(want); err != nil {
		t.Error(err)
	}
}

func TestComposeFromCSV(t *testing.T) {
	dir := t.TempDir()
	csv := filepath.Join(dir, "cells.csv")
	data := "position,caption,image\n" +
		"top_left,A,a.jpg\ntop_right,B,b.jpg\nbottom_left,C,c.jpg\nbottom_right,D,d.jpg\n"
	if err := os.WriteFile(csv, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "out", "promo.jpg")
	out, err := run(t, "compose",
		"-t", "From CSV",
		"-s", csv,
		"-o", target,
		"--top-left-caption", "Override",
		"--images-dir", dir,
	)
	if err != nil {
		t.Fatalf("compose: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Error(err)
	}
}

func TestComposeIncomplete(t *testing.T) {
	_, err := run(t, "compose", "--title", "x", "--top-left-caption", "only one")
	if err == nil {
		t.Error("expected error for incomplete grid")
	}
}

func TestComposeRequiresTitle(t *testing.T) {
	if _, err := run(t, "compose"); err == nil {
		t.Error("expected error without --title")
	}
}
