package flags

import (
	"encoding/csv"
	"fmt"
	"os"

	"foodgram/internal/logger"
	"foodgram/internal/model"
	"foodgram/internal/service"

	"github.com/urfave/cli/v2"
)

// Ingredients 从CSV导入食材目录
// 每行两列: 名称,计量单位，无表头
func Ingredients(c *cli.Context) error {
	path := c.String("path")

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("打开CSV文件失败: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("解析CSV文件失败: %w", err)
	}

	ingredients := make([]model.Ingredient, 0, len(records))
	for _, record := range records {
		if record[0] == "" || record[1] == "" {
			continue
		}
		ingredients = append(ingredients, model.Ingredient{
			Name:            record[0],
			MeasurementUnit: record[1],
		})
	}

	imported, err := service.NewIngredientService().BatchImport(ingredients)
	if err != nil {
		logger.GetSugaredLogger().Errorf("导入食材失败: %v", err)
		return err
	}

	logger.GetSugaredLogger().Infof("导入食材成功: %d 条", imported)
	return nil
}
