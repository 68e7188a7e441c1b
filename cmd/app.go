package cmd

import (
	"github.com/achilleasa/lumen/scene"
	"github.com/achilleasa/lumen/scene/demo"
	"github.com/urfave/cli"
)

// Create the command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using hybrid ray tracing and ray marching"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level (debug, info, notice, warning, error)",
			EnvVar: "LUMEN_LOG_LEVEL",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a demo scene",
			Description: `
Render a single frame of a demo scene. Each worker renders a contiguous band
of rows; the bands are joined in row order, tone-mapped and written to the
output file. The image format is selected by the file extension (png, bmp,
tif/tiff).

The rendered frame can optionally be uploaded to an S3 compatible object
store.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "bulb",
					Usage:  "demo scene to render",
					EnvVar: "LUMEN_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  int(demo.DefaultWidth),
					Usage:  "frame width",
					EnvVar: "LUMEN_WIDTH",
				},
				cli.IntFlag{
					Name:   "height",
					Value:  int(demo.DefaultHeight),
					Usage:  "frame height",
					EnvVar: "LUMEN_HEIGHT",
				},
				cli.UintFlag{
					Name:   "aa",
					Value:  scene.DefaultAA,
					Usage:  "samples per pixel",
					EnvVar: "LUMEN_AA",
				},
				cli.UintFlag{
					Name:   "branch",
					Value:  scene.DefaultBranch,
					Usage:  "secondary rays per bounce",
					EnvVar: "LUMEN_BRANCH",
				},
				cli.UintFlag{
					Name:   "bounces",
					Value:  scene.DefaultBounces,
					Usage:  "max number of bounces",
					EnvVar: "LUMEN_BOUNCES",
				},
				cli.Float64Flag{
					Name:   "fov",
					Usage:  "override the scene camera's field of view (degrees)",
					EnvVar: "LUMEN_FOV",
				},
				cli.IntFlag{
					Name:   "workers, w",
					Usage:  "number of render workers; 0 uses one per cpu",
					EnvVar: "LUMEN_WORKERS",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  1,
					Usage:  "base random seed",
					EnvVar: "LUMEN_SEED",
				},
				cli.Float64Flag{
					Name:   "converge",
					Usage:  "stop sampling a pixel once its average changes by less than this amount; 0 disables",
					EnvVar: "LUMEN_CONVERGE",
				},
				cli.UintFlag{
					Name:   "min-samples",
					Value:  4,
					Usage:  "samples taken before checking for convergence",
					EnvVar: "LUMEN_MIN_SAMPLES",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "frame.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "LUMEN_OUT",
				},
				cli.UintFlag{
					Name:   "thumbnail",
					Usage:  "also write a thumbnail of this width",
					EnvVar: "LUMEN_THUMBNAIL",
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					Usage:  "upload the frame to this bucket",
					EnvVar: "LUMEN_S3_BUCKET",
				},
				cli.StringFlag{
					Name:   "s3-key",
					Usage:  "object key for the uploaded frame; defaults to the output filename",
					EnvVar: "LUMEN_S3_KEY",
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					Usage:  "S3 endpoint url",
					EnvVar: "LUMEN_S3_ENDPOINT",
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					Usage:  "S3 region",
					EnvVar: "LUMEN_S3_REGION",
				},
				cli.StringFlag{
					Name:   "s3-access-key",
					EnvVar: "LUMEN_S3_ACCESS_KEY",
				},
				cli.StringFlag{
					Name:   "s3-secret-key",
					EnvVar: "LUMEN_S3_SECRET_KEY",
				},
				cli.StringFlag{
					Name:   "s3-acl",
					Usage:  "canned ACL for the uploaded object",
					EnvVar: "LUMEN_S3_ACL",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available demo scenes",
			Action: ListScenes,
		},
	}

	return app
}
