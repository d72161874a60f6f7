package console

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-phrase/internal/storage"
)

const (
	defaultSelectorRowLength = 80
	defaultSelectorRowCount  = 5
)

type Selectable interface {
	Selector() string
}

type selector[T Selectable] struct {
	options []option[T]
	output  []string
}

type option[T Selectable] struct {
	id  storage.Identifier
	val T
}

func NewSelector[T Selectable](v map[storage.Identifier]T) *selector[T] {
	s := &selector[T]{
		options: []option[T]{},
	}

	for id, val := range v {
		s.options = append(s.options, option[T]{id: id, val: val})
	}
	slices.SortFunc(s.options, func(a, b option[T]) int {
		return strings.Compare(a.val.Selector(), b.val.Selector())
	})
	s.build()

	return s
}

func (s *selector[T]) Prompt(t *Term, prompt string) (storage.Identifier, error) {
	if err := t.Printf("%s\n", prompt); err != nil {
		return "", err
	}

	for _, str := range s.output {
		if len(str) > 0 {
			if err := t.Printf("%s\n", str); err != nil {
				return "", err
			}
		}
	}

	selection, err := t.Prompt("Make your selection: ", WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil {
				return false, "Invalid selection!\n"
			}

			if s.Select(i) == "" {
				return false, "Invalid selection!\n"
			}

			return true, ""
		},
	))
	if err != nil {
		return "", err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return "", err
	}

	return s.Select(i), nil
}

func (s *selector[T]) Select(i int) storage.Identifier {
	if i < 1 || i > len(s.options) {
		return ""
	}
	return s.options[i-1].id
}

func (s *selector[T]) build() {
	// Calculate column width
	colWidth := 1
	for _, v := range s.options {
		l := len(v.val.Selector()) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Figure out the number of columns and rows. We want to fill columns
	// first, left to right, but we might need more rows than the default
	// number if there isn't enough space.
	numVals := len(s.options)
	numCols := defaultSelectorRowLength / colWidth
	if numCols < 1 {
		numCols = 1
	}
	numRows := numVals / numCols
	if numRows < defaultSelectorRowCount {
		numRows = defaultSelectorRowCount
	}

	count := 0
	rows := make([]string, numRows)
	for _, v := range s.options {
		rows[count%numRows] = rows[count%numRows] + fmt.Sprintf("%2d. %-*s  ", count+1, colWidth-5, v.val.Selector())
		count++
	}

	s.output = rows
}
