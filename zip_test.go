package gorange

import (
	"testing"

	"github.com/matryer/is"
)

func TestZipVal2_ShortestWins(t *testing.T) {
	is := is.New(t)

	zipped := ZipVal2[int, string](FromSlice([]int{1, 2, 3}), FromSlice([]string{"a", "b"}))

	is.Equal(Collect[Pair[int, string]](zipped), []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	})
}

func TestZipVal2_DotProduct(t *testing.T) {
	is := is.New(t)

	ints := []int{1, 2, 3}
	doubles := []float64{1.0, 2.5, 3.0}

	total := 0.0
	Each(ZipVal2[int, float64](FromSlice(ints), FromSlice(doubles)), func(elem Pair[int, float64]) {
		total += float64(elem.First) * elem.Second
	})

	is.Equal(total, 15.0)
}

func TestZipVal2_ValueOnlySubSequence(t *testing.T) {
	is := is.New(t)

	// spans have no references, so the value-only policy falls back to
	// reading by value
	zipped := ZipVal2[int, string](Span(0, 3), FromSlice([]string{"a", "b", "c"}))

	is.Equal(Collect[Pair[int, string]](zipped), []Pair[int, string]{
		{First: 0, Second: "a"},
		{First: 1, Second: "b"},
		{First: 2, Second: "c"},
	})
}

func TestZipRef2_MutatesInPlace(t *testing.T) {
	is := is.New(t)

	elems := []int{1, 2, 3}

	zipped := ZipRef2[int, int](FromSlice(elems), FromSlice(elems))
	Each(zipped, func(elem Pair[*int, *int]) {
		*elem.First++
	})

	is.Equal(elems, []int{2, 3, 4})
}

func TestZipRef2_RequiresRefs(t *testing.T) {
	mustPanicCapability(t, func() {
		ZipRef2[int, int](Span(0, 3), FromSlice([]int{1, 2, 3}))
	})
}

func TestZip2_Mixture(t *testing.T) {
	is := is.New(t)

	elems := []int{10, 20, 30}

	// slice slots alias their storage, span slots carry copies
	zipped := Zip2[int, int](FromSlice(elems), Span(0, 3))

	for !zipped.Empty() {
		elem := ReadValue[Pair[Cell[int], Cell[int]]](zipped)

		is.True(elem.First.Ptr() != nil)
		is.True(elem.Second.Ptr() == nil)

		elem.First.Set(elem.First.Get() + elem.Second.Get())

		Advance[Pair[Cell[int], Cell[int]]](zipped)
	}

	is.Equal(elems, []int{10, 21, 32})
}

func TestZip2_ValueCellRejectsWrites(t *testing.T) {
	is := is.New(t)

	zipped := Zip2[int, int](Span(0, 3), Span(0, 3))
	elem := ReadValue[Pair[Cell[int], Cell[int]]](zipped)

	is.Equal(elem.First.Get(), 0)

	mustPanicCapability(t, func() {
		elem.First.Set(7)
	})
}

func TestZipExact2(t *testing.T) {
	is := is.New(t)

	zipped := ZipExact2[int, string](FromSlice([]int{1, 2}), FromSlice([]string{"a", "b"}))

	is.Equal(Collect[Pair[int, string]](zipped), []Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	})
}

func TestZipExact2_LengthMismatch(t *testing.T) {
	zipped := ZipExact2[int, string](FromSlice([]int{1, 2, 3}), FromSlice([]string{"a", "b"}))

	defer func() {
		if recover() != ErrLengthMismatch {
			t.Fatal("expected ErrLengthMismatch panic")
		}
	}()

	Collect[Pair[int, string]](zipped)
}

func TestZip_Len(t *testing.T) {
	is := is.New(t)

	// the unbounded span contributes no bound, the slices do
	zipped := ZipVal3[int, int, int](Ints(), FromSlice([]int{1, 2, 3}), FromSlice([]int{4, 5}))

	is.True(zipped.Caps().Sized)
	is.Equal(zipped.(Sized).Len(), 2)
}

func TestZipVal3(t *testing.T) {
	is := is.New(t)

	zipped := ZipVal3[int, string, int](Ints(), FromSlice([]string{"a", "b"}), Span(10, 20))

	is.Equal(Collect[Triple[int, string, int]](zipped), []Triple[int, string, int]{
		{First: 0, Second: "a", Third: 10},
		{First: 1, Second: "b", Third: 11},
	})
}

func TestZipRef3_MutatesInPlace(t *testing.T) {
	is := is.New(t)

	a := []int{1, 2}
	b := []int{10, 20}
	c := []int{100, 200}

	Each(ZipRef3[int, int, int](FromSlice(a), FromSlice(b), FromSlice(c)), func(elem Triple[*int, *int, *int]) {
		*elem.Third = *elem.First + *elem.Second
	})

	is.Equal(c, []int{11, 22})
}

func TestZip_Clone(t *testing.T) {
	is := is.New(t)

	zipped := ZipVal2[int, int](FromSlice([]int{1, 2}), Span(0, 2))

	is.True(zipped.Caps().Clone)

	clone := zipped.(Cloner[Pair[int, int]]).Clone()

	is.Equal(Collect[Pair[int, int]](clone), []Pair[int, int]{
		{First: 1, Second: 0},
		{First: 2, Second: 1},
	})
	is.Equal(Collect[Pair[int, int]](zipped), []Pair[int, int]{
		{First: 1, Second: 0},
		{First: 2, Second: 1},
	})
}

func TestZip_OwnershipInherited(t *testing.T) {
	is := is.New(t)

	zipped := ZipVal2[int, int](Of(1, 2), FromSlice([]int{3, 4}))

	is.True(zipped.Caps().Owning)
	is.True(!zipped.Caps().Clone)
}
