package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tidechat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST backend (default from Config)
//	-f string   base URL of the files host (default from Config)
//	-t string   session token
//	-u string   uploader kind: http or s3
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.FilesBaseURL, "f", cfg.FilesBaseURL, "base URL of the files host")
	fs.StringVar(&cfg.SessionToken, "t", cfg.SessionToken, "session token")
	uploader := fs.String("u", string(cfg.Uploader), "uploader kind (http or s3)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.Uploader = UploaderKind(*uploader)
}
