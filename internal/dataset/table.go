package dataset

import (
	"fmt"
	"strconv"
)

type ColumnKind int

const (
	Numeric ColumnKind = iota
	Nominal
	String
)

// Cell 单元格。Missing为true时表示缺失值
type Cell struct {
	Missing bool
	Number  float64
	Str     string
}

func MissingCell() Cell {
	return Cell{Missing: true}
}

func NumberCell(f float64) Cell {
	return Cell{Number: f}
}

func StringCell(s string) Cell {
	return Cell{Str: s}
}

// Text 返回单元格的文本形式，缺失值返回"?"
func (c Cell) Text(kind ColumnKind) string {
	if c.Missing {
		return "?"
	}
	if kind == Numeric {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Str
}

type Column struct {
	Name string
	Kind ColumnKind

	// Categories 枚举列声明的取值集合，按首次出现顺序排列
	Categories []string

	Cells []Cell
}

// Table 数据表。各列行数始终一致，所有操作均按列名查找，与列的位置无关
type Table struct {
	Relation string
	Columns  []*Column
}

func NewTable(relation string) *Table {
	return &Table{
		Relation: relation,
		Columns:  make([]*Column, 0, 16),
	}
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Column 按列名查找，不存在时返回nil
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

func (t *Table) AddColumn(col *Column) error {
	if t.Column(col.Name) != nil {
		return fmt.Errorf("已经存在名为%s的列", col.Name)
	}
	if len(t.Columns) > 0 && len(col.Cells) != t.NumRows() {
		return fmt.Errorf("列%s的行数为%d，与数据表的%d行不一致", col.Name, len(col.Cells), t.NumRows())
	}
	t.Columns = append(t.Columns, col)
	return nil
}

func (t *Table) AddRow(cells []Cell) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("数据长度为%d，与列数%d不一致", len(cells), len(t.Columns))
	}
	for i, col := range t.Columns {
		col.Cells = append(col.Cells, cells[i])
	}
	return nil
}

// DropColumn 删除名为name的列。列不存在时不做任何事，返回false
func (t *Table) DropColumn(name string) bool {
	for i, col := range t.Columns {
		if col.Name == name {
			t.Columns = append(t.Columns[:i], t.Columns[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteMissing 删除在名为name的列上缺失的所有记录。列不存在时不做任何事
func (t *Table) DeleteMissing(name string) {
	col := t.Column(name)
	if col == nil {
		return
	}

	keep := make([]int, 0, len(col.Cells))
	for i, cell := range col.Cells {
		if !cell.Missing {
			keep = append(keep, i)
		}
	}
	if len(keep) == len(col.Cells) {
		return
	}

	for _, c := range t.Columns {
		cells := make([]Cell, len(keep))
		for i, row := range keep {
			cells[i] = c.Cells[row]
		}
		c.Cells = cells
	}
}

// RenameValues 按映射表重写枚举列的所有取值。映射可以多对一。
// 列中出现了映射表没有的取值时返回UnmappedValueError
func (t *Table) RenameValues(name string, mapping map[string]string) error {
	col := t.Column(name)
	if col == nil {
		return fmt.Errorf("不存在名为%s的列", name)
	}
	if col.Kind != Nominal {
		return fmt.Errorf("列%s不是枚举列", name)
	}

	for i := range col.Cells {
		cell := &col.Cells[i]
		if cell.Missing {
			continue
		}
		to, ok := mapping[cell.Str]
		if !ok {
			return &UnmappedValueError{Column: name, Value: cell.Str}
		}
		cell.Str = to
	}

	// 声明的取值集合替换为映射目标值的集合，保持原有顺序
	seen := make(map[string]struct{})
	categories := make([]string, 0, len(col.Categories))
	for _, v := range col.Categories {
		to, ok := mapping[v]
		if !ok {
			// 声明了但数据中已不存在的取值，直接丢弃
			continue
		}
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}
		categories = append(categories, to)
	}
	col.Categories = categories

	return nil
}

// RenameValue 将枚举列中等于old的取值改为new。old不存在时不做任何事
func (t *Table) RenameValue(name, old, new string) {
	col := t.Column(name)
	if col == nil || col.Kind != Nominal {
		return
	}
	for i := range col.Cells {
		if !col.Cells[i].Missing && col.Cells[i].Str == old {
			col.Cells[i].Str = new
		}
	}
	for i, v := range col.Categories {
		if v == old {
			col.Categories[i] = new
		}
	}
}

// Compactify 根据数据实际存在的取值重新生成各枚举列声明的取值集合
func (t *Table) Compactify() {
	for _, col := range t.Columns {
		if col.Kind != Nominal {
			continue
		}
		seen := make(map[string]struct{})
		categories := make([]string, 0, len(col.Categories))
		for _, cell := range col.Cells {
			if cell.Missing {
				continue
			}
			if _, ok := seen[cell.Str]; ok {
				continue
			}
			seen[cell.Str] = struct{}{}
			categories = append(categories, cell.Str)
		}
		col.Categories = categories
	}
}
