package gorange

import (
	"errors"
	"iter"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestFromSlice(t *testing.T) {
	is := is.New(t)

	elems := []int{1, 2, 3}
	seq := FromSlice(elems)

	is.Equal(seq.(Sized).Len(), 3)
	is.Equal(Collect[int](seq), []int{1, 2, 3})
	is.True(seq.Empty())
}

func TestFromSlice_AliasesStorage(t *testing.T) {
	is := is.New(t)

	elems := []int{1, 2, 3}
	seq := FromSlice(elems)

	// mutations through the sequence are visible in the slice, and
	// mutations of the slice are visible through the sequence
	*ReadRef[int](seq) = 10
	is.Equal(elems[0], 10)

	elems[1] = 20
	Advance[int](seq)
	is.Equal(ReadValue[int](seq), 20)
}

func TestFromSlice_Clone(t *testing.T) {
	is := is.New(t)

	seq := FromSlice([]int{1, 2, 3})
	Advance[int](seq)

	clone := seq.(Cloner[int]).Clone()

	is.Equal(Collect[int](clone), []int{2, 3})
	is.Equal(Collect[int](seq), []int{2, 3})
}

func TestOf_Owning(t *testing.T) {
	is := is.New(t)

	seq := Of(1, 2, 3)

	is.True(seq.Caps().Owning)
	is.True(!seq.Caps().Clone)

	_, cloneable := seq.(Cloner[int])
	is.True(!cloneable)

	is.Equal(Collect[int](seq), []int{1, 2, 3})
}

func TestOf_MutateThroughRef(t *testing.T) {
	is := is.New(t)

	seq := Of(10, 20, 30)

	*ReadRef[int](seq) += 100

	is.Equal(Accumulate[int](seq), 160)
}

func TestOwnSlice(t *testing.T) {
	is := is.New(t)

	seq := OwnSlice([]float64{1.5, 0.5, 2.5, 2, 4})

	is.True(seq.Caps().Owning)
	is.Equal(Accumulate[float64](seq), 10.5)
}

func TestSpan(t *testing.T) {
	is := is.New(t)

	seq := Span(int64(3), int64(6))

	is.Equal(seq.(Sized).Len(), 3)
	is.Equal(Collect[int64](seq), []int64{3, 4, 5})
}

func TestInts(t *testing.T) {
	tests := []struct {
		bounds []int
		want   []int
	}{
		{
			bounds: []int{5},
			want:   []int{0, 1, 2, 3, 4},
		},
		{
			bounds: []int{2, 6},
			want:   []int{2, 3, 4, 5},
		},
		{
			bounds: []int{0},
			want:   []int{},
		},
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			is := is.New(t)

			is.Equal(Collect[int](Ints(test.bounds...)), test.want)
		})
	}
}

func TestInts_Unbounded(t *testing.T) {
	is := is.New(t)

	seq := Ints()

	is.True(!seq.Caps().Sized)
	is.Equal(TakeCollect[int](seq, 4), []int{0, 1, 2, 3})
}

func TestInts_TooManyBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	Ints(1, 2, 3)
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ch := make(chan int, 5)
	for _, elem := range []int{1, 2, 3, 4, 5} {
		ch <- elem
	}
	close(ch)

	is.Equal(Collect[int](FromChannel(ch)), []int{1, 2, 3, 4, 5})
}

func TestFromChannel_Empty(t *testing.T) {
	is := is.New(t)

	ch := make(chan int)
	close(ch)

	is.True(FromChannel(ch).Empty())
}

func TestAs_Identity(t *testing.T) {
	is := is.New(t)

	seq := FromSlice([]int{1, 2, 3})

	adapted, err := As[int](seq)
	is.NoErr(err)
	is.Equal(adapted, seq)

	// a second adaptation must not re-wrap either
	again, err := As[int](adapted)
	is.NoErr(err)
	is.Equal(again, seq)
}

func TestAs_Slice(t *testing.T) {
	is := is.New(t)

	seq, err := As[int]([]int{1, 2, 3})
	is.NoErr(err)
	is.Equal(Collect[int](seq), []int{1, 2, 3})
}

func TestAs_Channel(t *testing.T) {
	is := is.New(t)

	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)

	seq, err := As[string](ch)
	is.NoErr(err)
	is.Equal(Collect[string](seq), []string{"a", "b"})
}

func TestAs_IterSeq(t *testing.T) {
	is := is.New(t)

	var src iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	seq, err := As[int](src)
	is.NoErr(err)
	is.Equal(Collect[int](seq), []int{1, 2, 3})
}

func TestAs_NotAdaptable(t *testing.T) {
	is := is.New(t)

	_, err := As[int]("not a sequence")
	is.True(errors.Is(err, ErrNotAdaptable))

	// element type mismatch is not adaptable either
	_, err = As[string]([]int{1, 2, 3})
	is.True(errors.Is(err, ErrNotAdaptable))
}
