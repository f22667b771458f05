// Package wasmdebug formats the function names and signatures that
// appear in trap/error messages, grounded on tetratelabs-wazero's own
// internal/wasmdebug.FuncName/signature helpers. Unlike the teacher's
// version this package carries no call-frame/stack-trace machinery
// (out of scope here): it holds two frame-less formatting functions,
// of which FuncName is used once at RunFunction's error-wrapping
// boundary.
package wasmdebug

import (
	"strconv"
	"strings"

	"github.com/gowasm/wazerolite/api"
)

// FuncName formats a module/function name pair the way trap messages
// name the function that raised them: "moduleName.funcName", falling
// back to a synthesized "$funcIdx" when funcName is empty.
func FuncName(moduleName, funcName string, funcIdx uint32) string {
	if funcName == "" {
		funcName = "$" + strconv.FormatUint(uint64(funcIdx), 10)
	}
	if moduleName == "" {
		return "." + funcName
	}
	return moduleName + "." + funcName
}

// Signature appends a function's parameter/result type list to name,
// e.g. "mod.add(i32,i32) i32".
func Signature(name string, params []api.ValueType, result *api.ValueType) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	if result != nil {
		b.WriteByte(' ')
		b.WriteString(result.String())
	}
	return b.String()
}
