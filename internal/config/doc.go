// Package config loads goey.json, the project file read by the goey CLI.
//
// # Configuration File Structure
//
//	{
//	  "toaster": {
//	    "position": "top-right",
//	    "gap": 14,
//	    "visibleToasts": 3,
//	    "spring": true,
//	    "bounce": 0.4,
//	    "theme": "dark",
//	    "displayDuration": "4s"
//	  },
//	  "preview": {
//	    "host": "localhost",
//	    "port": 7420
//	  },
//	  "export": {
//	    "dir": "frames",
//	    "bucket": "my-bucket",
//	    "prefix": "toasts/",
//	    "region": "eu-west-1",
//	    "fps": 60,
//	    "concurrency": 4
//	  }
//	}
//
// Every field is optional. Missing fields keep the defaults from New.
//
// # Usage
//
//	cfg, err := config.Discover(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tc, err := cfg.ToasterConfig()
package config
