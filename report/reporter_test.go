// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/katalvlaran/jordan/jordan"
	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/report"
)

func run(t *testing.T, rows [][]int64, opts ...jordan.Option) (jordan.Result, error) {
	t.Helper()
	a, err := matrix.FromInts(rows)
	require.NoError(t, err)
	s, err := jordan.NewSolver(a, opts...)
	require.NoError(t, err)

	return s.Run()
}

func TestFormatMatrix(t *testing.T) {
	m, err := matrix.FromStrings([][]string{{"-2", "1", "1/2"}, {"-4", "0", "1"}, {"-2", "0", "0"}})
	require.NoError(t, err)
	assert.Equal(t, "⎡-2  1  1/2⎤\n⎢-4  0    1⎥\n⎣-2  0    0⎦\n", report.FormatMatrix(m))

	row, err := matrix.FromInts([][]int64{{2, 10}})
	require.NoError(t, err)
	assert.Equal(t, "[2  10]\n", report.FormatMatrix(row))

	assert.Equal(t, "[]\n", report.FormatMatrix(nil))
}

func TestReporter_RussianTranscript(t *testing.T) {
	res, err := run(t, [][]int64{{0, 1, 0}, {-4, 4, 0}, {-2, 1, 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Result(res, jordan.IndependenceRank, nil))
	out := buf.String()

	rule := strings.Repeat("-", 70)
	assert.Contains(t, out, rule+"\nШаг 1: Собственные числа и их кратности\n"+rule+"\n")
	assert.Contains(t, out, "Характеристический многочлен: λ^3 - 6λ^2 + 12λ - 8")
	assert.Contains(t, out, "   λ = 2, a = 3\n")
	assert.Contains(t, out, "   λ = 2, ρ = 2\n")
	assert.Contains(t, out, "  λ = 2; Количество клеток размера 2x2: 1")
	assert.Contains(t, out, "Оно равно 2\n")
	assert.Contains(t, out, "Шаг 3: Жорданова форма")
	assert.Contains(t, out, "⎡2  1  0⎤\n⎢0  2  0⎥\n⎣0  0  2⎦\n")
	assert.Contains(t, out, "  Цепочка: [1, 0, 0]ᵀ, [-2, -4, -2]ᵀ\n")
	assert.Contains(t, out, "ПРОВЕРКА\nTrue\n")
	assert.NotContains(t, out, "кандидат")
	assert.NotContains(t, out, "\x1b[")
}

func TestReporter_EnglishVerbose(t *testing.T) {
	res, err := run(t, [][]int64{{0, 2, 0}, {0, 0, 0}, {0, 0, 0}}, jordan.WithIndependence(jordan.IndependenceWeak))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := report.New(&buf, report.WithLanguage(language.English), report.WithVerbose(true))
	require.NoError(t, r.Result(res, jordan.IndependenceWeak, nil))
	out := buf.String()

	assert.Contains(t, out, "Step 1: Eigenvalues and multiplicities")
	assert.Contains(t, out, "Independence test: weak")
	assert.Contains(t, out, "Matrix B = (A - λI) to the power 2")
	assert.Contains(t, out, "    candidate [1, 0, 0]ᵀ: wrong order\n")
	assert.Contains(t, out, "    candidate [1, 0, 0]ᵀ: accepted\n")
	assert.Contains(t, out, "CHECK\nFalse\nP is singular")
}

func TestReporter_NonRational(t *testing.T) {
	res, err := run(t, [][]int64{{0, -1}, {1, 0}})
	require.ErrorIs(t, err, jordan.ErrNonRationalSpectrum)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Result(res, jordan.IndependenceRank, err))
	out := buf.String()
	assert.Contains(t, out, "λ^2 + 1")
	assert.Contains(t, out, "Спектр не рационален")
	assert.NotContains(t, out, "ПРОВЕРКА")
}

func TestReporter_SkippedBlock(t *testing.T) {
	a, err := matrix.FromInts([][]int64{{2, 0}, {0, 2}})
	require.NoError(t, err)
	tables := []jordan.BlockTable{{
		Eigenvalue: jordan.Eigenvalue{Value: big.NewRat(2, 1), Algebraic: 2, Geometric: 2},
		Counts:     []int{1, 1},
	}}
	set, err := jordan.BuildChains(a, tables)
	require.NoError(t, err)
	p, err := jordan.TransitionMatrix(2, set)
	require.ErrorIs(t, err, jordan.ErrUnderfilled)

	res := jordan.Result{
		A:         a,
		Structure: jordan.Structure{Tables: tables},
		Chains:    jordan.Chains{Set: set, P: p},
	}
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Result(res, jordan.IndependenceRank, nil))
	out := buf.String()

	assert.Contains(t, out, "Клетка 2x2, λ = 2\nПредупреждение: block of size 2: jordan: no admissible root vector for block\n")
	assert.Contains(t, out, "Клетка 1x1, λ = 2\n  Цепочка: [1, 0]ᵀ\n")
	assert.Contains(t, out, "⎡1⎤\n⎣0⎦\n")
	assert.Contains(t, out, "ПРОВЕРКА\nFalse\nP вырождена")
}

func TestReporter_UnsupportedLanguageFallsBack(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.WithLanguage(language.Japanese))
	r.Step("Check")
	assert.Contains(t, buf.String(), "Шаг 1: Проверка")
}

func TestReporter_Styled(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, report.WithStyle(true))
	r.Check(jordan.Verification{Invertible: true, Equal: true})
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "True")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporter_WriteError(t *testing.T) {
	r := report.New(failingWriter{})
	r.Step("Check")
	r.Step("Check")
	require.EqualError(t, r.Err(), "disk full")
}
