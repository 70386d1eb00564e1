package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"unsafe"

	"github.com/ZenLiuCN/dnssd"
	"github.com/urfave/cli/v2"
)

var dispatcher *dnssd.Dispatcher

func main() {
	app := cli.NewApp()
	app.Usage = "dns-sd library probe"
	app.Name = "dnssdctl"
	app.Description = "inspect and drive the optional dns-sd client library through the lazy binding"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
		&cli.StringSliceFlag{Name: "library", Aliases: []string{"l"}, Usage: "library names or paths to try, default from " + dnssd.EnvLibrary + " or the platform"},
	}
	app.Before = before
	app.Commands = []*cli.Command{
		{Name: "symbols", Action: symbols, Usage: "display bound and missing entry points"},
		{Name: "fullname",
			Action:    fullname,
			Usage:     "construct the full name of a service instance",
			ArgsUsage: "[service] <regtype> <domain>",
			Args:      true,
		},
		{Name: "txt",
			Action:    txt,
			Usage:     "encode a txt record with the library",
			ArgsUsage: "key=value|key ...",
			Args:      true,
		},
		{Name: "register",
			Action: register,
			Usage:  "register a service until interrupted",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "instance name or default computer name"},
				&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "service type, such as _http._tcp", Required: true},
				&cli.StringFlag{Name: "domain", Usage: "domain or default domains"},
				&cli.StringFlag{Name: "host", Usage: "target host or this host"},
				&cli.UintFlag{Name: "port", Aliases: []string{"p"}, Usage: "service port", Required: true},
			},
			ArgsUsage: "[key=value|key ...]",
			Args:      true,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func before(ctx *cli.Context) error {
	dispatcher = dnssd.NewDispatcher(dnssd.NewSystemResolver(ctx.StringSlice("library")...), ctx.Bool("debug"))
	return nil
}

func symbols(ctx *cli.Context) (err error) {
	for _, s := range dispatcher.Bound() {
		fmt.Printf("bound\t%s\n", s)
	}
	for _, s := range dispatcher.Missing() {
		fmt.Printf("missing\t%s\n", s)
	}
	if err = dispatcher.Err(); err != nil && ctx.Bool("debug") {
		log.Printf("%v", err)
	}
	return nil
}

func fullname(ctx *cli.Context) error {
	var service, regtype, domain string
	switch a := ctx.Args().Slice(); len(a) {
	case 2:
		regtype, domain = a[0], a[1]
	case 3:
		service, regtype, domain = a[0], a[1], a[2]
	default:
		return fmt.Errorf("expect [service] <regtype> <domain>, got %d arguments", len(a))
	}
	buf := make([]byte, dnssd.MaxDomainName)
	if err := dispatcher.ConstructFullName(&buf[0], service, regtype, domain).Err(); err != nil {
		return err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	fmt.Println(string(buf))
	return nil
}

func txt(ctx *cli.Context) error {
	b, err := dnssd.BuildTXT(dispatcher, ctx.Args().Slice()...)
	if err != nil {
		return err
	}
	fmt.Print(hex.Dump(b))
	v, err := dnssd.ParseTXT(b)
	if err != nil {
		return err
	}
	for _, s := range v {
		fmt.Println(s)
	}
	return nil
}

func register(ctx *cli.Context) (err error) {
	port := ctx.Uint("port")
	if port == 0 || port > 0xFFFF {
		return fmt.Errorf("invalid port %d", port)
	}
	var record []byte
	var ptr unsafe.Pointer
	if ctx.Args().Len() > 0 {
		if record, err = dnssd.BuildTXT(dispatcher, ctx.Args().Slice()...); err != nil {
			return
		}
		if len(record) > 0 {
			ptr = unsafe.Pointer(&record[0])
		}
	}
	var sd dnssd.ServiceRef
	st := dispatcher.Register(&sd, 0, dnssd.InterfaceIndexAny,
		ctx.String("name"), ctx.String("type"), ctx.String("domain"), ctx.String("host"),
		dnssd.NetworkPort(uint16(port)), uint16(len(record)), ptr, 0, 0)
	if err = st.Err(); err != nil {
		return fmt.Errorf("register %s: %w", ctx.String("type"), err)
	}
	defer dispatcher.RefDeallocate(sd)
	if ctx.Bool("debug") {
		log.Printf("registered %s on port %d, socket %d", ctx.String("type"), port, dispatcher.RefSockFD(sd))
	}
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-c.Done()
	return nil
}
