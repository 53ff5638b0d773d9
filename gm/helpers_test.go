package gm

import (
	"testing"

	"github.com/oliverbestmann/gm3d/approx"
	"github.com/stretchr/testify/require"
)

func requireApprox[T Aggregate](t *testing.T, expected, actual T) {
	t.Helper()
	require.Truef(t, ApproxEqual(expected, actual), "expected %v, got %v", expected, actual)
}

func requireNear[T Aggregate](t *testing.T, expected, actual T, epsilon float32) {
	t.Helper()
	require.Truef(t, AbsDiffEq(expected, actual, epsilon), "expected %v, got %v (epsilon %v)", expected, actual, epsilon)
}

func requireApproxScalar(t *testing.T, expected, actual float32) {
	t.Helper()
	require.Truef(t, approx.Default.UlpsEq(expected, actual), "expected %v, got %v", expected, actual)
}
