package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"instance of the same root error": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped root error": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"deeply wrapped": {
			kind:   ErrDuplicate,
			err:    Wrap(Wrap(ErrDuplicate, "inner"), "outer"),
			wantIs: true,
		},
		"different root error": {
			kind:   ErrNotFound,
			err:    Wrap(ErrDuplicate, "gone"),
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("stdlib"),
			wantIs: false,
		},
		"nil error": {
			kind:   ErrNotFound,
			err:    nil,
			wantIs: false,
		},
		"multi error containing the kind": {
			kind:   ErrAmount,
			err:    Append(ErrCurrency, Wrap(ErrAmount, "negative")),
			wantIs: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantIs, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "description"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrappedABCICode(t *testing.T) {
	err := Wrap(Wrap(ErrUnauthorized, "inner"), "outer")
	coder, ok := err.(interface{ ABCICode() uint32 })
	if !ok {
		t.Fatal("wrapped error must provide an ABCI code")
	}
	assert.Equal(t, ErrUnauthorized.ABCICode(), coder.ABCICode())
}

func TestWrapPreservesStackTrace(t *testing.T) {
	err := Wrap(ErrState, "first")
	if stackTrace(err) == nil {
		t.Fatal("wrapping must attach a stack trace")
	}
	st := stackTrace(err)
	if again := stackTrace(Wrap(err, "second")); fmt.Sprint(again) != fmt.Sprint(st) {
		t.Fatal("wrapping again must not attach a second stack trace")
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nils must return nil, got %+v", err)
	}

	single := Wrap(ErrInput, "bad")
	if err := Append(nil, single); err != single {
		t.Fatalf("appending a single error must return it unchanged, got %+v", err)
	}

	multi := Append(Wrap(ErrInput, "bad"), Wrap(ErrEmpty, "missing"))
	assert.True(t, ErrInput.Is(multi))
	assert.True(t, ErrEmpty.Is(multi))
	assert.False(t, ErrNotFound.Is(multi))

	flat := Append(multi, Wrap(ErrState, "broken"))
	u, ok := flat.(unpacker)
	if !ok {
		t.Fatal("combined errors must unpack")
	}
	assert.Len(t, u.Unpack(), 3)
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("name", ErrEmpty.New("required"), "invalid name"),
		Field("amount", ErrAmount.New("negative"), "invalid amount"),
	)

	assert.Len(t, FieldErrors(err, "name"), 1)
	assert.Len(t, FieldErrors(err, "amount"), 1)
	assert.Len(t, FieldErrors(err, "bogus"), 0)
	assert.True(t, ErrEmpty.Is(err))
}

func TestRegisterPanicsOnReuse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering an used code must panic")
		}
	}()
	Register(ErrNotFound.ABCICode(), "duplicate code")
}
