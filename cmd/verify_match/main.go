// verify_match 无界面运行一局比赛，由脚本机器人操作，用于验证模拟核心
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/deadzone/pkg/config"
	"github.com/gonewx/deadzone/pkg/game"
	"github.com/gonewx/deadzone/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "data/match.yaml", "比赛配置文件路径")
	seed       = flag.Int64("seed", 1, "随机种子")
	seconds    = flag.Float64("seconds", 120, "最长模拟时间（秒）")
	fps        = flag.Float64("fps", 60, "模拟帧率")
)

// resultHUD 记录比赛结果
type resultHUD struct {
	game.NopHUD
	died bool
	won  bool
}

func (h *resultHUD) PlayerDied() { h.died = true }
func (h *resultHUD) GameWon()    { h.won = true }

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadMatchConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hud := &resultHUD{}
	b := &bot{}
	sm := game.NewSceneManager(scenes.NewMatchSceneFactory(scenes.MatchSceneOptions{
		Config: cfg,
		Input:  b,
		HUD:    hud,
		Seed:   *seed,
	}), game.NewFrameClock(cfg.Loop.FixedTimestep, cfg.Loop.MaxFrameTime))
	b.sceneManager = sm

	if err := sm.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dt := 1 / *fps
	frames := int(*seconds * *fps)
	for i := 0; i < frames && !hud.died && !hud.won; i++ {
		if err := sm.Frame(dt); err != nil {
			fmt.Fprintf(os.Stderr, "Error: frame %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	scene := sm.GetCurrentScene().(*scenes.MatchScene)
	match := scene.MatchState()
	killed := cfg.Spawn.TotalEnemyCount - match.EnemiesRemaining() - match.CurrentEnemyCount()

	outcome := "timeout"
	switch {
	case hud.won:
		outcome = "won"
	case hud.died:
		outcome = "died"
	}

	fmt.Printf("seed:      %d\n", *seed)
	fmt.Printf("outcome:   %s\n", outcome)
	fmt.Printf("time:      %.1fs\n", scene.Elapsed())
	fmt.Printf("shots:     %d\n", b.shots)
	fmt.Printf("killed:    %d/%d\n", killed, cfg.Spawn.TotalEnemyCount)
	fmt.Printf("alive:     %d\n", match.CurrentEnemyCount())
	fmt.Printf("remaining: %d\n", match.EnemiesRemaining())
}
