package main

import (
	"flag"
	"log"

	"github.com/gonewx/deadzone/pkg/app"
	"github.com/gonewx/deadzone/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "比赛配置文件路径（默认使用嵌入的 data/match.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		MatchConfigPath: *configPath,
		Seed:            *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer game.Shutdown()

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Deadzone")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
