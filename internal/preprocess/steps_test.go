package preprocess

import (
	"testing"

	"github.com/packagewjx/hepatitis-classifier/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func buildTable() *dataset.Table {
	table := dataset.NewTable("test")
	_ = table.AddColumn(&dataset.Column{
		Name:       "Category",
		Kind:       dataset.Nominal,
		Categories: []string{"0", "0s", "1", "2", "3"},
		Cells: []dataset.Cell{
			dataset.StringCell("0"), dataset.StringCell("0s"), dataset.StringCell("1"),
			dataset.StringCell("2"), dataset.StringCell("3"), dataset.StringCell("1"),
		},
	})
	_ = table.AddColumn(&dataset.Column{
		Name:       "Sex",
		Kind:       dataset.Nominal,
		Categories: []string{"m", "f"},
		Cells: []dataset.Cell{
			dataset.StringCell("m"), dataset.StringCell("f"), dataset.MissingCell(),
			dataset.StringCell("f"), dataset.StringCell("m"), dataset.StringCell("m"),
		},
	})
	_ = table.AddColumn(&dataset.Column{
		Name: "Age",
		Kind: dataset.Numeric,
		Cells: []dataset.Cell{
			dataset.NumberCell(32), dataset.MissingCell(), dataset.NumberCell(44),
			dataset.NumberCell(51), dataset.NumberCell(29), dataset.NumberCell(62),
		},
	})
	return table
}

func TestMergeClassValues(t *testing.T) {
	table := buildTable()
	step := MergeClassValues("Category", map[string]string{
		"0": "0", "0s": "0", "1": "1", "2": "1", "3": "1",
	})
	assert.NoError(t, step.Apply(table))

	col := table.Column("Category")
	assert.Equal(t, []string{"0", "1"}, col.Categories)
	expect := []string{"0", "0", "1", "1", "1", "1"}
	for i, cell := range col.Cells {
		assert.Equal(t, expect[i], cell.Str)
	}

	/*
		映射表没有覆盖所有取值时必须失败
	*/
	table = buildTable()
	step = MergeClassValues("Category", map[string]string{"0": "0"})
	err := step.Apply(table)
	assert.Error(t, err)
	_, ok := err.(*dataset.UnmappedValueError)
	assert.True(t, ok)
}

func TestRenameNominal(t *testing.T) {
	table := buildTable()
	step := RenameNominal("Sex", SexRename)
	assert.NoError(t, step.Apply(table))

	col := table.Column("Sex")
	assert.Equal(t, []string{"0", "1"}, col.Categories)
	assert.Equal(t, "0", col.Cells[0].Str)
	assert.Equal(t, "1", col.Cells[1].Str)

	/*
		映射表没有覆盖的取值保持不变，不是错误
	*/
	table = buildTable()
	step = RenameNominal("Sex", map[string]string{"x": "y"})
	assert.NoError(t, step.Apply(table))
	assert.Equal(t, "m", table.Column("Sex").Cells[0].Str)
}

func TestDropColumnsStep(t *testing.T) {
	table := buildTable()

	/*
		不存在的列名是无操作，数据表不变
	*/
	unchanged := buildTable()
	assert.NoError(t, DropColumns("NoSuchColumn").Apply(table))
	assert.Equal(t, unchanged, table)

	/*
		删除多个列时，每个列名都按名查找，与删除顺序无关
	*/
	assert.NoError(t, DropColumns("Category", "Age", "NoSuchColumn").Apply(table))
	assert.Equal(t, []string{"Sex"}, table.ColumnNames())
}

func TestDropMissingRows(t *testing.T) {
	table := buildTable()
	assert.NoError(t, DropMissingRows().Apply(table))

	// 只剩下没有任何缺失值的完整记录
	assert.Equal(t, 4, table.NumRows())
	for _, col := range table.Columns {
		for _, cell := range col.Cells {
			assert.False(t, cell.Missing)
		}
	}
}

func TestChainStopsOnError(t *testing.T) {
	table := buildTable()
	err := Chain(
		MergeClassValues("Category", map[string]string{"0": "0"}),
		DropColumns("Age"),
	).Apply(table)
	assert.Error(t, err)

	// 前一步出错后，后面的步骤不再执行
	assert.NotNil(t, table.Column("Age"))
}
