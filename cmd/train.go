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
	"math"
	"os"

	"github.com/packagewjx/hepatitis-classifier/internal/record"
	"github.com/packagewjx/hepatitis-classifier/internal/train"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Flags for train
const (
	NumFeaturesFlag = "K"
	MaxDepthFlag    = "depth"
	NumTreesFlag    = "I"
	SeedFlag        = "S"
	CVFoldsFlag     = "cv_folds"
	CVSeedFlag      = "cv_seed"
	ModelOutputFlag = "output"
	MetricsDBFlag   = "metrics-db"
)

var (
	numFeatures int
	maxDepth    int
	numTrees    int
	seed        int
	cvFolds     int
	cvSeed      int
	modelOutput string
	metricsDB   string
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train filename",
	Short: "使用随机森林对数据集进行交叉验证训练",
	Long: "读取预处理后的数据集，以Category列为类别，使用随机森林进行k折交叉验证并输出评估结果。" +
		"指定--output时将在整个数据集上训练模型并保存。",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("参数错误：需要数据集文件路径")
		}
		if cvFolds < 2 {
			return errors.New("参数错误：交叉验证折数至少为2")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &train.Config{
			NumFeatures: numFeatures,
			MaxDepth:    maxDepth,
			NumTrees:    numTrees,
			Seed:        seed,
			CVFolds:     cvFolds,
			CVSeed:      cvSeed,
			ModelPath:   modelOutput,
		}

		report, err := train.Train(args[0], cfg, os.Stdout)
		if err != nil {
			return errors.Wrap(err, "训练出错")
		}

		if metricsDB == "" {
			return nil
		}

		log.Println("正在保存训练记录到数据库")
		dao, err := record.NewDao(metricsDB)
		if err != nil {
			return errors.Wrap(err, "连接指标数据库失败")
		}
		err = dao.SaveRunRecord(&record.RunRecord{
			Dataset:        report.Dataset,
			NumInstances:   report.NumInstances,
			NumTrees:       cfg.NumTrees,
			NumFeatures:    report.NumFeatures,
			MaxDepth:       cfg.MaxDepth,
			Seed:           cfg.Seed,
			CVFolds:        cfg.CVFolds,
			CVSeed:         cfg.CVSeed,
			AccuracyMean:   report.AccuracyMean,
			AccuracyStdDev: math.Sqrt(report.AccuracyVariance),
			ModelPath:      report.ModelPath,
		})
		if err != nil {
			return errors.Wrap(err, "保存训练记录失败")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().IntVarP(&numFeatures, NumFeaturesFlag, "K", 0,
		"每次分裂考虑的特征数。0表示使用log2(特征数)+1")
	trainCmd.Flags().IntVar(&maxDepth, MaxDepthFlag, 3,
		"树的最大深度。0表示不限制")
	trainCmd.Flags().IntVarP(&numTrees, NumTreesFlag, "I", 300,
		"森林中树的数量")
	trainCmd.Flags().IntVarP(&seed, SeedFlag, "S", 1,
		"训练随机数种子")
	trainCmd.Flags().IntVar(&cvFolds, CVFoldsFlag, 10,
		"交叉验证折数")
	trainCmd.Flags().IntVar(&cvSeed, CVSeedFlag, 0,
		"交叉验证随机数种子")
	trainCmd.Flags().StringVarP(&modelOutput, ModelOutputFlag, "o", "",
		"模型保存路径，将自动追加.model后缀。不指定则不保存模型")
	trainCmd.Flags().StringVar(&metricsDB, MetricsDBFlag, "",
		"可选的MySQL主机地址，保存本次训练的参数与指标")
}
