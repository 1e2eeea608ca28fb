package catalog

import (
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// 1始まりのページ番号とページサイズ。NewPage/ParsePageを通すと常に正の値。
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	if number <= 0 {
		number = DefaultPage
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// 数値でない値はデフォルトに戻す
func ParsePage(rawNumber, rawSize string) Page {
	return NewPage(atoiOrZero(rawNumber), atoiOrZero(rawSize))
}

func (p Page) Limit() int {
	return NewPage(p.Number, p.Size).Size
}

func (p Page) Offset() int {
	n := NewPage(p.Number, p.Size)
	return (n.Number - 1) * n.Size
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
