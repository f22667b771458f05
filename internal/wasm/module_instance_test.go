package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowasm/wazerolite/api"
)

func TestModuleInstance_FunctionAndExports(t *testing.T) {
	m := NewModuleInstance("math")
	i32 := api.ValueTypeI32
	fn := &FunctionInstance{Name: "add", Type: &api.FunctionType{Params: []api.ValueType{i32, i32}, Result: &i32}, Module: m}
	m.Functions = append(m.Functions, fn)
	m.Exports["add"] = 0

	got, err := m.Function(0)
	require.NoError(t, err)
	require.Same(t, fn, got)

	exported, ok := m.ExportedFunction("add")
	require.True(t, ok)
	require.Same(t, fn, exported)

	_, ok = m.ExportedFunction("missing")
	require.False(t, ok)

	_, err = m.Function(1)
	require.Error(t, err)
}

func TestModuleInstance_Registry(t *testing.T) {
	m := NewModuleInstance("mod")
	require.Nil(t, m.Registry())

	r := NewRegistry()
	require.NoError(t, r.AddModule("mod", m))
	require.Same(t, r, m.Registry())

	err := r.AddModule("mod", NewModuleInstance("mod"))
	require.Error(t, err)

	got, ok := r.Module("mod")
	require.True(t, ok)
	require.Same(t, m, got)
}
