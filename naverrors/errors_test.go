package naverrors_test

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"go.viam.com/nav/naverrors"
)

func TestOutOfRangeGrid(t *testing.T) {
	err := naverrors.OutOfRangeGrid(3, 4)
	test.That(t, errors.Is(err, naverrors.ErrOutOfRangeGrid), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "(3, 4)")
}

func TestOutOfRangePosition(t *testing.T) {
	err := naverrors.OutOfRangePosition(0.1, 0.2)
	test.That(t, errors.Is(err, naverrors.ErrOutOfRangePosition), test.ShouldBeTrue)
}

func TestParse(t *testing.T) {
	err := naverrors.Parsef("unknown field %q", "foo")
	test.That(t, errors.Is(err, naverrors.ErrParse), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "foo")
}
