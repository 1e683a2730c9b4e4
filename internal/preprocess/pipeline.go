package preprocess

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/packagewjx/hepatitis-classifier/internal/dataset"
)

const processedSuffix = "_processed"

type Options struct {
	// DropUseless 删除UselessColumns中的列
	DropUseless bool

	// DropColumns 用户指定要删除的列
	DropColumns []string

	// Output 输出文件路径。为空时根据输入路径生成
	Output string
}

// OutputPath 解析输出文件路径。指定了explicit时将其扩展名改为.arff，
// 否则在input去掉扩展名后追加_processed.arff
func OutputPath(input, explicit string) string {
	if explicit != "" {
		return strings.TrimSuffix(explicit, filepath.Ext(explicit)) + dataset.NativeExt
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + processedSuffix + dataset.NativeExt
}

// Run 执行完整的预处理流程并保存结果，返回输出文件路径。
// 流程为：加载、合并类别、重命名取值、删除列、删除含缺失值的记录、保存。
// 任一步骤出错则整个流程中止，不会产生部分输出
func Run(input string, opts *Options) (string, error) {
	log.Println("正在加载数据集")
	table, err := dataset.Load(input)
	if err != nil {
		return "", err
	}

	steps := []Step{
		MergeClassValues(ClassColumn, CategoryMerging),
		RenameNominal(SexColumn, SexRename),
		DropColumns(IndexColumn),
	}
	if len(opts.DropColumns) > 0 {
		log.Println("将删除指定的列")
		steps = append(steps, DropColumns(opts.DropColumns...))
	}
	if opts.DropUseless {
		log.Println("将删除贡献度低的列")
		steps = append(steps, DropColumns(UselessColumns...))
	}
	steps = append(steps, DropMissingRows(), Compact())

	log.Println("正在清洗数据")
	if err := Chain(steps...).Apply(table); err != nil {
		return "", err
	}

	output := OutputPath(input, opts.Output)
	log.Println("正在保存预处理结果到" + output)
	if err := dataset.Save(output, table); err != nil {
		return "", err
	}

	return output, nil
}
