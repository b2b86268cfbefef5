package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/flatabi/internal/common"
)

func TestGeneratedArraysUpToDate(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "layout_arrays.go"))
	require.NoError(t, err)
	got, err := renderArrayConstraint(common.Scalars, common.ArrayLengths)
	require.NoError(t, err)
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("layout_arrays.go is stale, run go generate (-want +got):\n%s", diff)
	}
}

func TestArrayConstraintTermLimit(t *testing.T) {
	_, err := renderArrayConstraint(common.Scalars, []int{1, 2, 3, 4, 5})
	require.ErrorContains(t, err, "union terms")
}

func TestRenderHeader(t *testing.T) {
	got, err := renderHeader(Manifest{Elements: []string{"int32", "rune", "byte"}})
	require.NoError(t, err)
	want := `/* Code generated by flatgen header; DO NOT EDIT. */

#ifndef FLATABI_H
#define FLATABI_H

#include <stdbool.h>
#include <stdint.h>

typedef struct { uint8_t const *ptr; uintptr_t len; } SharedStr;
typedef struct { uint8_t *ptr; uintptr_t len; } UniqueStr;
typedef struct { uint8_t *ptr; uintptr_t len; uintptr_t cap; } StableString;

typedef struct { int32_t const *ptr; uintptr_t len; } SharedSlice_int32;
typedef struct { int32_t *ptr; uintptr_t len; } UniqueSlice_int32;
typedef struct { int32_t *ptr; uintptr_t len; uintptr_t cap; } StableVec_int32;

typedef struct { uint8_t const *ptr; uintptr_t len; } SharedSlice_uint8;
typedef struct { uint8_t *ptr; uintptr_t len; } UniqueSlice_uint8;
typedef struct { uint8_t *ptr; uintptr_t len; uintptr_t cap; } StableVec_uint8;

#endif /* FLATABI_H */
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderHeaderNoOwning(t *testing.T) {
	off := false
	got, err := renderHeader(Manifest{Guard: "MY_H", Elements: []string{"complex64"}, Owning: &off})
	require.NoError(t, err)
	require.Contains(t, string(got), "#ifndef MY_H")
	require.Contains(t, string(got), "#include <complex.h>")
	require.Contains(t, string(got), "float _Complex const *ptr")
	require.NotContains(t, string(got), "StableVec")
	require.NotContains(t, string(got), "StableString")
}

func TestRenderHeaderUnknownElement(t *testing.T) {
	_, err := renderHeader(Manifest{Elements: []string{"string"}})
	require.ErrorContains(t, err, `"string"`)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guard: LIB_H\nelements: [float64, uint16]\nowning: false\n"), 0o600))
	m, err := loadManifest(path)
	require.NoError(t, err)
	require.Equal(t, "LIB_H", m.Guard)
	require.Equal(t, []string{"float64", "uint16"}, m.Elements)
	require.False(t, m.owning())

	require.NoError(t, os.WriteFile(path, []byte("elements: [int8]\nextra: 1\n"), 0o600))
	_, err = loadManifest(path)
	require.Error(t, err)
}

func TestAppReportsFatalErrors(t *testing.T) {
	var stderr bytes.Buffer
	code := -1
	app := newApp().ErrorWriter(&stderr).Terminate(func(c int) { code = c })

	_, err := app.Parse([]string{"--log.level=error", "header", "--elem", "string"})
	require.Error(t, err)
	app.FatalIfError(err, "")
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "flatgen: error:")
	require.Contains(t, stderr.String(), `element "string" has no C declaration`)
}

func TestAppWritesHeader(t *testing.T) {
	out := filepath.Join(t.TempDir(), "flat.h")
	_, err := newApp().Parse([]string{"--log.level=error", "header", "--elem", "int32", "--no-owning", "-o", out})
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(got), "SharedSlice_int32;")
	require.NotContains(t, string(got), "StableVec_int32")
}
