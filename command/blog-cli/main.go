// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/blogledger/command/blog-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "blog-cli"
	app.Usage = "sign and submit blog instructions to blogd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to blog `NETWORK` [blog|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a seed and its account, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise blog-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*blogd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "create-blog",
			Usage:     "create the blog of the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: " blog category `STRING`",
				},
				cli.UintFlag{
					Name:  "capacity, s",
					Value: 16,
					Usage: " maximum subscribers `COUNT`",
				},
			},
			Action: runCreateBlog,
		},
		{
			Name:      "update-blog",
			Usage:     "replace the category of a blog",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "blog, b",
					Value: "",
					Usage: " blog `ADDRESS` default is the identity's blog",
				},
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: "*new blog category `STRING`",
				},
			},
			Action: runUpdateBlog,
		},
		{
			Name:      "subscribe",
			Usage:     "add a subscriber to a blog",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "blog, b",
					Value: "",
					Usage: " blog `ADDRESS` default is the identity's blog",
				},
				cli.StringFlag{
					Name:  "subscriber, s",
					Value: "",
					Usage: "*identity name or account of the subscriber `ACCOUNT`",
				},
			},
			Action: runSubscribe,
		},
		{
			Name:      "post",
			Usage:     "create the next post of a blog",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "blog, b",
					Value: "",
					Usage: " blog `ADDRESS` default is the identity's blog",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*post title `STRING`",
				},
				cli.StringFlag{
					Name:  "body, B",
					Value: "",
					Usage: " post body `STRING`",
				},
			},
			Action: runCreatePost,
		},
		{
			Name:      "edit-post",
			Usage:     "rewrite the title and body of a post",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "post, P",
					Value: "",
					Usage: "*post `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*post title `STRING`",
				},
				cli.StringFlag{
					Name:  "body, B",
					Value: "",
					Usage: " post body `STRING`",
				},
			},
			Action: runUpdatePost,
		},
		{
			Name:      "delete-post",
			Usage:     "mark a post deleted",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "post, P",
					Value: "",
					Usage: "*post `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: " replacement title `STRING`",
				},
				cli.StringFlag{
					Name:  "body, B",
					Value: "",
					Usage: " replacement body `STRING`",
				},
			},
			Action: runDeletePost,
		},
		{
			Name:      "blog",
			Usage:     "display a blog",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "blog, b",
					Value: "",
					Usage: " blog `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `ACCOUNT` default is global identity",
				},
			},
			Action: runBlog,
		},
		{
			Name:      "show-post",
			Usage:     "display a post",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "post, P",
					Value: "",
					Usage: "*post `ADDRESS`",
				},
			},
			Action: runPost,
		},
		{
			Name:      "posts",
			Usage:     "list the posts of a blog",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "blog, b",
					Value: "",
					Usage: " blog `ADDRESS` default is the identity's blog",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runPosts,
		},
		{
			Name:      "plan",
			Usage:     "show the space a record would be allocated",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "post",
					Usage: " record `KIND` [blog|post]",
				},
				cli.StringFlag{
					Name:  "category, c",
					Value: "",
					Usage: " blog category `STRING`",
				},
				cli.UintFlag{
					Name:  "capacity, s",
					Value: 16,
					Usage: " maximum subscribers `COUNT`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: " post title `STRING`",
				},
				cli.StringFlag{
					Name:  "body, B",
					Value: "",
					Usage: " post body `STRING`",
				},
			},
			Action: runPlan,
		},
		{
			Name:   "info",
			Usage:  "display blog-cli status",
			Action: runInfo,
		},
		{
			Name:   "blogdInfo",
			Usage:  "display blogd status",
			Action: runBlogdInfo,
		},
		{
			Name:  "version",
			Usage: "display blog-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command || "generate" == command {
			// do not run setup if there is an existing configuration
			if "setup" == command {
				if _, err := checkFileExists(file); nil == err {
					return fmt.Errorf("not overwriting existing configuration: %q", file)
				}
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				testnet: isTestnet(network),
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configuration,
				testnet: configuration.TestNet,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	return app
}
