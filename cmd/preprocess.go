/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"log"

	"github.com/packagewjx/hepatitis-classifier/internal/preprocess"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Flags for preprocess
const (
	DropUselessFlag = "drop-useless"
	DropColumnsFlag = "drop-columns"
	OutputFlag      = "output"
)

var (
	dropUseless bool
	dropColumns []string
	outputPath  string
)

// preprocessCmd represents the preprocess command
var preprocessCmd = &cobra.Command{
	Use:   "preprocess filename",
	Short: "清洗丙肝数据集并保存为arff格式",
	Long: "读取csv或arff格式的HepatitisCdata数据集，合并Category类别，重命名Sex取值，" +
		"删除无用列，并移除所有包含缺失值的记录，最后保存为arff文件。" +
		"csv文件中的NA视为缺失值。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("参数错误：需要数据集文件路径")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := preprocess.Run(args[0], &preprocess.Options{
			DropUseless: dropUseless,
			DropColumns: dropColumns,
			Output:      outputPath,
		})
		if err != nil {
			return errors.Wrap(err, "预处理出错")
		}

		log.Println("预处理完成，结果保存在" + out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)

	preprocessCmd.Flags().BoolVar(&dropUseless, DropUselessFlag, false,
		"若设置，则删除对模型贡献度低的列")
	preprocessCmd.Flags().StringSliceVar(&dropColumns, DropColumnsFlag, []string{},
		"需要删除的列名，用逗号分隔。不存在的列将被忽略")
	preprocessCmd.Flags().StringVarP(&outputPath, OutputFlag, "o", "",
		"输出文件路径，后缀将被改为.arff。默认为<filename>_processed.arff")
}
