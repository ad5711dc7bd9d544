// Released under an MIT license. See LICENSE.

package describe

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/michaelmacinnis/hyper/internal/common"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient"
	"github.com/michaelmacinnis/hyper/internal/common/interface/ambient/mocks"
	"github.com/michaelmacinnis/hyper/internal/common/interface/cell"
	"github.com/michaelmacinnis/hyper/internal/common/struct/slot"
	"github.com/michaelmacinnis/hyper/internal/common/type/boolean"
	"github.com/michaelmacinnis/hyper/internal/common/type/empty"
	"github.com/michaelmacinnis/hyper/internal/common/type/list"
	"github.com/michaelmacinnis/hyper/internal/common/type/str"
	"github.com/michaelmacinnis/hyper/internal/index"
)

var errBroken = errors.New("broken")

func flag() *T {
	return &T{
		Name:  "flag",
		Forms: Singleton | Name,
		Root: Accessors{
			Fetch: map[Form]Fetcher{
				Singleton: {
					Can: func(a ambient.I, _ cell.I, _ Descriptor) bool {
						return a.Permitted("flag read")
					},
					Get: func(ambient.I, cell.I, Descriptor) (cell.I, error) {
						return boolean.True, nil
					},
				},
				Name: {
					Get: func(_ ambient.I, _ cell.I, d Descriptor) (cell.I, error) {
						if d.Name == "broken" {
							return nil, errBroken
						}

						return boolean.False, nil
					},
				},
			},
		},
		Morpher: Morpher{
			Can: func(_ ambient.I, c cell.I) bool {
				s, ok := common.Text(c)
				if !ok {
					return false
				}

				_, ok = boolean.Parse(s)

				return ok
			},
			Native: boolean.Is,
			To: func(_ ambient.I, c cell.I) cell.I {
				return boolean.New(common.String(c))
			},
			Zero: func() cell.I { return boolean.False },
		},
	}
}

func TestMorphZero(t *testing.T) {
	f := flag()

	if !f.CanMorph(nil, f.Zero()) {
		t.Fatal("zero cannot be morphed")
	}

	v, err := f.Morph(nil, f.Zero())
	if err != nil || !v.Equal(f.Zero()) {
		t.Fatalf("Morph(zero) = %v, %v", v, err)
	}

	for _, e := range []cell.I{nil, empty.Value, str.New(""), list.Empty} {
		v, err := f.Morph(nil, e)
		if err != nil || !v.Equal(boolean.False) {
			t.Errorf("Morph(%v) = %v, %v", e, v, err)
		}
	}
}

func TestMorphStructural(t *testing.T) {
	f := flag()

	v, err := f.Morph(nil, str.New(" TRUE "))
	if err != nil || !v.Equal(boolean.True) {
		t.Fatalf("Morph(TRUE) = %v, %v", v, err)
	}

	_, err = f.Morph(nil, str.New("maybe"))

	var me *MorphError
	if !errors.As(err, &me) {
		t.Fatalf("Morph(maybe) error = %v", err)
	}

	if me.Type != "flag" || !strings.Contains(me.Error(), "maybe") {
		t.Fatalf("MorphError = %q", me.Error())
	}
}

func TestMorphUnwrap(t *testing.T) {
	f := flag()

	for _, v := range []cell.I{str.New("true"), str.New("nope"), boolean.False} {
		wrapped := list.New(v)
		if f.CanMorph(nil, wrapped) != f.CanMorph(nil, v) {
			t.Errorf("CanMorph([%v]) != CanMorph(%v)", v, v)
		}

		nested := list.New(list.New(v))
		if f.CanMorph(nil, nested) != f.CanMorph(nil, v) {
			t.Errorf("CanMorph([[%v]]) != CanMorph(%v)", v, v)
		}
	}

	if f.CanMorph(nil, list.New(str.New("true"), str.New("false"))) {
		t.Error("a two element list morphed to a flag")
	}
}

func TestMorphDeref(t *testing.T) {
	f := flag()

	v, err := f.Morph(nil, slot.New(slot.New(str.New("false"))))
	if err != nil || !v.Equal(boolean.False) {
		t.Fatalf("Morph(variable) = %v, %v", v, err)
	}
}

func TestMorphPair(t *testing.T) {
	f := flag()

	v, err := f.MorphPair(nil, str.New("tr"), str.New("ue"))
	if err != nil || !v.Equal(boolean.True) {
		t.Fatalf("MorphPair(tr, ue) = %v, %v", v, err)
	}

	if f.CanMorphPair(nil, str.New("tr"), str.New("ee")) {
		t.Fatal("tr ee morphed to a flag")
	}

	f.Pair = func(ambient.I, cell.I, cell.I) (cell.I, bool) {
		return boolean.True, true
	}

	if !f.CanMorphPair(nil, str.New("x"), str.New("y")) {
		t.Fatal("Pair override was ignored")
	}
}

func TestGetPermission(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := mocks.NewMockI(ctrl)
	a.EXPECT().Permitted("flag read").Return(false)
	a.EXPECT().Permitted("flag read").Return(true)

	f := flag()

	_, err := f.Get(a, nil, Only())

	var ge *GetError
	if !errors.As(err, &ge) || ge.Type != "flag" || ge.Descriptor.Form != Singleton {
		t.Fatalf("Get without permission = %v", err)
	}

	v, err := f.Get(a, nil, Only())
	if err != nil || !v.Equal(boolean.True) {
		t.Fatalf("Get with permission = %v, %v", v, err)
	}
}

func TestGetErrors(t *testing.T) {
	f := flag()

	_, err := f.Get(nil, nil, ByIndex(3))
	if err == nil || err.Error() != "cannot get flag 3" {
		t.Fatalf("Get(index) = %v", err)
	}

	_, err = f.Get(nil, str.New("parent"), ByName("x"))
	if err == nil {
		t.Fatal("child Get succeeded without child accessors")
	}

	_, err = f.Get(nil, nil, ByName("broken"))
	if !errors.Is(err, errBroken) {
		t.Fatalf("Get(broken) = %v", err)
	}

	if f.CanCreate(nil, nil, ByName("x")) {
		t.Fatal("CanCreate succeeded without creators")
	}

	_, err = f.Create(nil, nil, ByName("x"), nil)

	var ce *CreateError
	if !errors.As(err, &ce) || ce.Descriptor.Name != "x" {
		t.Fatalf("Create = %v", err)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want string
	}{
		{ByIndex(3), "item 3"},
		{ByRange(2, 4), "item 2 to 4"},
		{ByOrdinal(index.Int(-1)), "the last item"},
		{ByOrdinal(index.Middle), "the middle item"},
		{ByOrdinals(index.Int(1), index.Int(3)), "items first to third"},
		{ByID(7), "item id 7"},
		{ByIDs(7, 9), "item id 7 to 9"},
		{ByName("x"), `item "x"`},
		{Every(), "every item"},
		{Only(), "the item"},
	}

	for _, tt := range tests {
		if got := tt.d.Describe("item"); got != tt.want {
			t.Errorf("Describe = %q, want %q", got, tt.want)
		}
	}
}

func TestForm(t *testing.T) {
	f := Index | Name | Mass

	if !f.Has(Index|Name) || f.Has(ID) {
		t.Fatalf("Has is wrong for %v", f)
	}

	if got := f.String(); got != "index|name|mass" {
		t.Fatalf("String() = %q", got)
	}

	if got := Form(0).String(); got != "none" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(flag(), &T{Name: "text", Morpher: Morpher{
		Can:    func(_ ambient.I, c cell.I) bool { _, ok := common.Text(c); return ok },
		Native: str.Is,
		To:     func(_ ambient.I, c cell.I) cell.I { return str.New(common.String(c)) },
		Zero:   func() cell.I { return str.Empty },
	}})

	if got := strings.Join(r.Types(nil, str.New("true")), " "); got != "flag text" {
		t.Fatalf("Types(true) = %q", got)
	}

	if got := strings.Join(r.Types(nil, str.New("hello")), " "); got != "text" {
		t.Fatalf("Types(hello) = %q", got)
	}

	ok, err := r.Is(nil, str.New("false"), "FLAG")
	if err != nil || !ok {
		t.Fatalf("Is(false, FLAG) = %v, %v", ok, err)
	}

	if _, err = r.Morph(nil, str.New("x"), "widget"); err == nil {
		t.Fatal("Morph to an unknown type succeeded")
	}
}
