package flags

import (
	"os"

	"foodgram/internal/logger"

	"github.com/urfave/cli/v2"
)

// Newflags 注册管理命令，有命令参数时执行后退出
func Newflags() {
	var app = cli.NewApp()
	app.Name = "foodgram"
	app.Usage = "食谱分享平台管理命令"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"n"},
					Usage:   "用户名",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "email",
					Aliases: []string{"e"},
					Usage:   "邮箱",
					Value:   "admin@foodgram.local",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "密码",
					Value:   "changeme",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "用户角色 (admin/user)",
					Value:   "admin",
				},
			},
		},
		{
			Name:    "ingredients",
			Aliases: []string{"i"},
			Usage:   "从CSV导入食材目录",
			Action:  Ingredients,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "path",
					Usage:    "CSV文件路径，每行: 名称,计量单位",
					Required: true,
				},
			},
		},
	}
	if len(os.Args) > 1 {
		if err := app.Run(os.Args); err != nil {
			logger.GetSugaredLogger().Fatalf("执行命令失败: %v", err)
		}
		os.Exit(0)
	}
}
