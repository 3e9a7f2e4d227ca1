package main

import (
	"github.com/spf13/cobra"

	"sandfall/internal/app"
)

var guiConfig = app.NewConfig()

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the simulation window",
	Long: `Run the simulation in an ebiten window. Requires building with -tags ebiten.

Controls:
  Space        - Pause / resume
  Enter        - Resume
  N            - Single tick
  R / S        - Reset with the same / a fresh seed
  Left mouse   - Paint sand
  Right mouse  - Paint wall
  B            - Cycle the brush mask
  P            - Place the trace probe at the cursor
  T            - Toggle the trace overlay
  [ / ]        - Lower / raise the probe hardness
  Q / Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		world, err := newWorld()
		if err != nil {
			return err
		}
		return runGUI(world, guiConfig)
	},
}

func init() {
	guiConfig.Bind(guiCmd.Flags())
}
