package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTable() *Table {
	table := NewTable("sample")
	_ = table.AddColumn(&Column{
		Name:       "Category",
		Kind:       Nominal,
		Categories: []string{"0", "0s", "1", "2", "3"},
		Cells: []Cell{
			StringCell("0"), StringCell("0s"), StringCell("1"),
			StringCell("2"), StringCell("3"), StringCell("1"),
		},
	})
	_ = table.AddColumn(&Column{
		Name:       "Sex",
		Kind:       Nominal,
		Categories: []string{"m", "f"},
		Cells: []Cell{
			StringCell("m"), StringCell("f"), StringCell("f"),
			StringCell("m"), MissingCell(), StringCell("m"),
		},
	})
	_ = table.AddColumn(&Column{
		Name: "Age",
		Kind: Numeric,
		Cells: []Cell{
			NumberCell(32), MissingCell(), NumberCell(44),
			NumberCell(51), NumberCell(29), NumberCell(62),
		},
	})
	return table
}

func TestDropColumn(t *testing.T) {
	table := sampleTable()

	/*
		删除不存在的列，数据表必须完全不变
	*/
	unchanged := sampleTable()
	assert.False(t, table.DropColumn("NoSuchColumn"))
	assert.Equal(t, unchanged, table)

	/*
		删除存在的列，剩余列保持原有顺序
	*/
	assert.True(t, table.DropColumn("Sex"))
	assert.Equal(t, []string{"Category", "Age"}, table.ColumnNames())
	assert.Equal(t, 6, table.NumRows())

	// 再删一次是无操作
	assert.False(t, table.DropColumn("Sex"))
	assert.Equal(t, 2, table.NumColumns())
}

func TestRenameValues(t *testing.T) {
	table := sampleTable()
	mapping := map[string]string{"0": "0", "0s": "0", "1": "1", "2": "1", "3": "1"}

	err := table.RenameValues("Category", mapping)
	assert.NoError(t, err)

	col := table.Column("Category")
	expect := []string{"0", "0", "1", "1", "1", "1"}
	for i, cell := range col.Cells {
		assert.Equal(t, expect[i], cell.Str)
	}
	assert.Equal(t, []string{"0", "1"}, col.Categories)
}

func TestRenameValuesUnmapped(t *testing.T) {
	table := sampleTable()

	/*
		映射表缺少取值3，必须报错
	*/
	err := table.RenameValues("Category", map[string]string{"0": "0", "0s": "0", "1": "1", "2": "1"})
	assert.Error(t, err)
	unmapped, ok := err.(*UnmappedValueError)
	assert.True(t, ok)
	assert.Equal(t, "Category", unmapped.Column)
	assert.Equal(t, "3", unmapped.Value)

	/*
		列不存在也必须报错
	*/
	err = table.RenameValues("NoSuchColumn", map[string]string{})
	assert.Error(t, err)
}

func TestRenameValue(t *testing.T) {
	table := sampleTable()

	table.RenameValue("Sex", "m", "0")
	table.RenameValue("Sex", "f", "1")

	col := table.Column("Sex")
	assert.Equal(t, []string{"0", "1"}, col.Categories)
	assert.Equal(t, "0", col.Cells[0].Str)
	assert.Equal(t, "1", col.Cells[1].Str)
	assert.True(t, col.Cells[4].Missing)

	/*
		不存在的取值不做任何事，也不报错
	*/
	before := table.Column("Sex").Cells
	table.RenameValue("Sex", "x", "y")
	assert.Equal(t, before, table.Column("Sex").Cells)
}

func TestDeleteMissing(t *testing.T) {
	table := sampleTable()

	table.DeleteMissing("Age")
	assert.Equal(t, 5, table.NumRows())

	table.DeleteMissing("Sex")
	assert.Equal(t, 4, table.NumRows())

	// 所有列上都不再有缺失值
	for _, col := range table.Columns {
		for _, cell := range col.Cells {
			assert.False(t, cell.Missing)
		}
	}

	// 列不存在时是无操作
	table.DeleteMissing("NoSuchColumn")
	assert.Equal(t, 4, table.NumRows())
}

func TestCompactify(t *testing.T) {
	table := sampleTable()

	// Sex缺失的记录同时是Category取值3的唯一记录
	table.DeleteMissing("Sex")
	table.Compactify()

	// 删除记录后枚举列声明的取值集合只剩实际存在的取值
	assert.Equal(t, []string{"0", "0s", "1", "2"}, table.Column("Category").Categories)
	assert.Equal(t, []string{"m", "f"}, table.Column("Sex").Categories)
}

func TestAddRow(t *testing.T) {
	table := NewTable("t")
	_ = table.AddColumn(&Column{Name: "a", Kind: Numeric})
	_ = table.AddColumn(&Column{Name: "b", Kind: Nominal})

	assert.NoError(t, table.AddRow([]Cell{NumberCell(1), StringCell("x")}))
	assert.Error(t, table.AddRow([]Cell{NumberCell(1)}))
	assert.Equal(t, 1, table.NumRows())

	// 列名不能重复
	assert.Error(t, table.AddColumn(&Column{Name: "a"}))
}
