// SPDX-License-Identifier: MIT

package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	msgStep           = "Step %d: %s"
	msgInput          = "Input matrix A:"
	msgSpectrum       = "Eigenvalues and multiplicities"
	msgCharPoly       = "Characteristic polynomial: %s"
	msgAlgebraic      = "Algebraic multiplicities:"
	msgGeometric      = "Geometric multiplicities:"
	msgNonRational    = "The spectrum is not rational; the Jordan form cannot be built over Q"
	msgCells          = "Jordan cells"
	msgCellCount      = "  λ = %s; number of cells of size %dx%d: %d"
	msgCellTotal      = "The number of Jordan cells equals the sum of the geometric multiplicities of all eigenvalues. It is %d"
	msgCellList       = "Jordan cells:"
	msgForm           = "Jordan form"
	msgFormHow        = "Built by placing the cells along the diagonal, larger cells first"
	msgFormResult     = "Jordan form:"
	msgRoots          = "Root vectors"
	msgPower          = "Matrix B = (A - λI) to the power %d"
	msgOrder          = " Power k = %d:"
	msgEigenvectors   = "  Eigenvectors:"
	msgRootsOfOrder   = "    Root vectors of order %d:"
	msgChains         = "Jordan chains"
	msgPolicy         = "Independence test: %s"
	msgBlock          = "Cell %dx%d, λ = %s"
	msgCandidate      = "    candidate %s: %s"
	msgChain          = "  Chain: %s"
	msgWarning        = "Warning: %v"
	msgTransition     = "Transition matrix"
	msgTransitionHelp = "P (columns are the chains, eigenvector first):"
	msgCheck          = "Check"
	msgCheckBanner    = "CHECK"
	msgCheckEqual     = "P⁻¹AP equals the reference Jordan form"
	msgCheckDiffer    = "P⁻¹AP differs from the reference Jordan form"
	msgCheckSingular  = "P is singular: the chains are linearly dependent"
	msgAccepted       = "accepted"
	msgWrongOrder     = "wrong order"
	msgDuplicate      = "duplicate"
	msgDependent      = "dependent"
)

var russian = map[string]string{
	msgStep:           "Шаг %d: %s",
	msgInput:          "Исходная матрица A:",
	msgSpectrum:       "Собственные числа и их кратности",
	msgCharPoly:       "Характеристический многочлен: %s",
	msgAlgebraic:      "Алгебраические кратности:",
	msgGeometric:      "Геометрические кратности:",
	msgNonRational:    "Спектр не рационален; жорданову форму над Q построить нельзя",
	msgCells:          "Жордановы клетки",
	msgCellCount:      "  λ = %s; Количество клеток размера %dx%d: %d",
	msgCellTotal:      "Количество клеток Жордана равно сумме геометрических кратностей всех чисел. Оно равно %d",
	msgCellList:       "Жордановы клетки:",
	msgForm:           "Жорданова форма",
	msgFormHow:        "Строится путем построения блоков в диагональ, начинаем с клеток большего размера",
	msgFormResult:     "Жорданова форма:",
	msgRoots:          "Поиск корневых векторов",
	msgPower:          "Матрица B = (A - λI) в степени %d",
	msgOrder:          " Степень k = %d:",
	msgEigenvectors:   "  Собственные векторы:",
	msgRootsOfOrder:   "    Корневые векторы порядка %d:",
	msgChains:         "Жордановы цепочки",
	msgPolicy:         "Проверка независимости: %s",
	msgBlock:          "Клетка %dx%d, λ = %s",
	msgCandidate:      "    кандидат %s: %s",
	msgChain:          "  Цепочка: %s",
	msgWarning:        "Предупреждение: %v",
	msgTransition:     "Матрица перехода",
	msgTransitionHelp: "P (столбцы: цепочки, начиная с собственного вектора):",
	msgCheck:          "Проверка",
	msgCheckBanner:    "ПРОВЕРКА",
	msgCheckEqual:     "P⁻¹AP совпадает с эталонной жордановой формой",
	msgCheckDiffer:    "P⁻¹AP не совпадает с эталонной жордановой формой",
	msgCheckSingular:  "P вырождена: цепочки линейно зависимы",
	msgAccepted:       "принят",
	msgWrongOrder:     "неверный порядок",
	msgDuplicate:      "повтор",
	msgDependent:      "зависим",
}

// supported lists the transcript languages; the first one is the default.
var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// messages is the transcript catalog, built once.
var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, ru := range russian {
		_ = b.SetString(language.Russian, key, ru)
		_ = b.SetString(language.English, key, key)
	}

	return b
}

// newPrinter returns a printer for the closest supported language.
func newPrinter(tag language.Tag) *message.Printer {
	_, idx, _ := matcher.Match(tag)

	return message.NewPrinter(supported[idx], message.Catalog(messages))
}
