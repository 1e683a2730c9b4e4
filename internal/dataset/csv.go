package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultMissingToken 原始数据集使用NA表示缺失值
const DefaultMissingToken = "NA"

// ReadCSV 读取带表头的csv数据。等于missingToken的单元格视为缺失值。
// 每一列的类型自动推断：所有取值都是数字的为数值列，否则为枚举列
func ReadCSV(r io.Reader, missingToken string) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "读取csv数据出错")
	}
	if len(records) == 0 {
		return nil, errors.New("csv数据没有表头")
	}

	header := records[0]
	rows := records[1:]

	table := NewTable("")
	for c, name := range header {
		col, err := buildColumn(name, rows, c, missingToken)
		if err != nil {
			return nil, err
		}
		if err := table.AddColumn(col); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func buildColumn(name string, rows [][]string, index int, missingToken string) (*Column, error) {
	numeric := true
	for _, row := range rows {
		v := row[index]
		if v == missingToken {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
	}

	col := &Column{
		Name:  name,
		Cells: make([]Cell, 0, len(rows)),
	}

	if numeric {
		col.Kind = Numeric
		for _, row := range rows {
			v := row[index]
			if v == missingToken {
				col.Cells = append(col.Cells, MissingCell())
				continue
			}
			f, _ := strconv.ParseFloat(v, 64)
			col.Cells = append(col.Cells, NumberCell(f))
		}
		return col, nil
	}

	// 枚举列，取值集合按首次出现顺序记录
	col.Kind = Nominal
	seen := make(map[string]struct{})
	for _, row := range rows {
		v := row[index]
		if v == missingToken {
			col.Cells = append(col.Cells, MissingCell())
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			col.Categories = append(col.Categories, v)
		}
		col.Cells = append(col.Cells, StringCell(v))
	}
	return col, nil
}
