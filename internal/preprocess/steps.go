package preprocess

import (
	"sort"

	"github.com/packagewjx/hepatitis-classifier/internal/dataset"
)

// MergeClassValues 按映射表严格重写类别列的取值，映射可以多对一。
// 列中出现映射表没有的取值时出错
func MergeClassValues(column string, mapping map[string]string) Step {
	return &mergeClassValues{column: column, mapping: mapping}
}

type mergeClassValues struct {
	column  string
	mapping map[string]string
}

func (m *mergeClassValues) Apply(table *dataset.Table) error {
	return table.RenameValues(m.column, m.mapping)
}

// RenameNominal 将枚举列中的取值逐个改名。映射表没有覆盖的取值保持不变
func RenameNominal(column string, mapping map[string]string) Step {
	return &renameNominal{column: column, mapping: mapping}
}

type renameNominal struct {
	column  string
	mapping map[string]string
}

func (r *renameNominal) Apply(table *dataset.Table) error {
	// 按固定顺序改名，保证结果稳定
	olds := make([]string, 0, len(r.mapping))
	for old := range r.mapping {
		olds = append(olds, old)
	}
	sort.Strings(olds)

	for _, old := range olds {
		table.RenameValue(r.column, old, r.mapping[old])
	}
	return nil
}

// DropColumns 按列名删除列。不存在的列将被忽略
func DropColumns(names ...string) Step {
	return &dropColumns{names: names}
}

type dropColumns struct {
	names []string
}

func (d *dropColumns) Apply(table *dataset.Table) error {
	for _, name := range d.names {
		table.DropColumn(name)
	}
	return nil
}

// DropMissingRows 逐列删除含缺失值的记录，处理完所有列后只剩完整记录
func DropMissingRows() Step {
	return &dropMissingRows{}
}

type dropMissingRows struct {
}

func (d *dropMissingRows) Apply(table *dataset.Table) error {
	for _, name := range table.ColumnNames() {
		table.DeleteMissing(name)
	}
	return nil
}

// Compact 重新生成各枚举列声明的取值集合，去掉数据中已不存在的取值
func Compact() Step {
	return &compact{}
}

type compact struct {
}

func (c *compact) Apply(table *dataset.Table) error {
	table.Compactify()
	return nil
}
