package dataset

import (
	"os"
	"path/filepath"
	"strings"
)

// Load 根据扩展名加载数据集。csv文件使用NA作为缺失值标记，其余视为arff格式
func Load(path string) (*Table, error) {
	fin, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		_ = fin.Close()
	}()

	var table *Table
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		table, err = ReadCSV(fin, DefaultMissingToken)
		if err == nil {
			// csv没有关系名，使用文件名
			table.Relation = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
	} else {
		table, err = ReadARFF(fin)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return table, nil
}

// Save 将数据表保存为arff文件
func Save(path string, table *Table) error {
	fout, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := WriteARFF(fout, table); err != nil {
		_ = fout.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := fout.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
