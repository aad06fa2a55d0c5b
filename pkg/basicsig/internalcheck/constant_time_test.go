package internalcheck

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"testing"
)

func TestNoDirectByteComparison(t *testing.T) {
	var findings []string

	for _, pkg := range loadPackages(t) {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			typesInfo := pkg.TypesInfo

			ast.Inspect(file, func(n ast.Node) bool {
				be, ok := n.(*ast.BinaryExpr)
				if !ok {
					return true
				}

				if be.Op != token.EQL && be.Op != token.NEQ {
					return true
				}

				left := typesInfo.TypeOf(be.X)
				right := typesInfo.TypeOf(be.Y)

				if isByteSlice(left) && isByteSlice(right) {
					pos := fset.Position(be.Pos())
					findings = append(findings, fmt.Sprintf("%s: avoid == on byte slices; use crypto/subtle or bytes.Equal for public data", pos))
				}

				return true
			})
		}
	}

	report(t, "constant-time", findings)
}

func isByteSlice(typ types.Type) bool {
	if typ == nil {
		return false
	}

	switch tt := typ.(type) {
	case *types.Slice:
		return isByte(tt.Elem())
	case *types.Pointer:
		return isByteSlice(tt.Elem())
	case *types.Named:
		return isByteSlice(tt.Underlying())
	case *types.Array:
		return isByte(tt.Elem())
	default:
		return false
	}
}

func isByte(t types.Type) bool {
	basic, ok := t.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}

func TestIsByteSlice(t *testing.T) {
	byteT := types.Typ[types.Byte]
	named := types.NewNamed(types.NewTypeName(token.NoPos, nil, "PublicKeyBytes", nil), types.NewArray(byteT, 65), nil)

	tests := []struct {
		name string
		typ  types.Type
		want bool
	}{
		{"[]byte", types.NewSlice(byteT), true},
		{"[64]byte", types.NewArray(byteT, 64), true},
		{"*[]byte", types.NewPointer(types.NewSlice(byteT)), true},
		{"named array", named, true},
		{"[]int", types.NewSlice(types.Typ[types.Int]), false},
		{"string", types.Typ[types.String], false},
		{"nil", nil, false},
	}
	for _, test := range tests {
		if got := isByteSlice(test.typ); got != test.want {
			t.Errorf("%s: isByteSlice = %v, want %v", test.name, got, test.want)
		}
	}
}
