package dataset

import "fmt"

// UnmappedValueError 表示严格映射时列中出现了映射表没有的取值
type UnmappedValueError struct {
	Column string
	Value  string
}

func (e *UnmappedValueError) Error() string {
	return fmt.Sprintf("列%s的取值[%s]没有对应的映射", e.Column, e.Value)
}

// LoadError 表示数据集文件不存在、不可读或格式错误
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("加载数据集%s失败: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError 表示保存数据集时的IO错误
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("保存数据集%s失败: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
