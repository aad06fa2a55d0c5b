package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/coinbase/basicsig-go/pkg/basicsig"
	"github.com/coinbase/basicsig-go/pkg/basicsig/ecdsasecp256k1"
	"github.com/coinbase/basicsig-go/pkg/basicsig/logging"
)

// maxSecretFileSize bounds the secret file: a hex scalar with some
// surrounding whitespace.
const maxSecretFileSize = 1024

var errNoSecret = errors.New("secret file is empty")

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "basicsig",
		Usage:   "ECDSA secp256k1 signatures with fixed-size encodings",
		Version: basicsig.LibraryVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Config file (yaml, json or toml) inside the working directory",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Encoding of binary arguments and output (hex, base64)",
				Value: "hex",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "oid",
				Usage:  "Print the PKIX algorithm identifier",
				Action: runOID,
			},
			{
				Name:   "version",
				Usage:  "Print library and primitive versions",
				Action: runVersion,
			},
			{
				Name:  "pubkey",
				Usage: "Convert public keys",
				Commands: []*cli.Command{
					{
						Name:  "from-der",
						Usage: "Decode a DER SubjectPublicKeyInfo into a 65-byte point",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "in", Usage: "DER public key", Required: true},
						},
						Action: runPubkeyFromDER,
					},
					{
						Name:  "to-der",
						Usage: "Encode a 65-byte point as a DER SubjectPublicKeyInfo",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "key", Usage: "Uncompressed public key", Required: true},
						},
						Action: runPubkeyToDER,
					},
				},
			},
			{
				Name:  "sign",
				Usage: "Sign a message (usually a digest)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "secret-file", Usage: "File holding the hex secret scalar", Required: true},
					&cli.StringFlag{Name: "pubkey", Usage: "Uncompressed public key of the scalar", Required: true},
					&cli.StringFlag{Name: "message", Usage: "Message to sign"},
				},
				Action: runSign,
			},
			{
				Name:  "verify",
				Usage: "Verify a 64-byte r || s signature",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sig", Usage: "Signature", Required: true},
					&cli.StringFlag{Name: "message", Usage: "Signed message"},
					&cli.StringFlag{Name: "pubkey", Usage: "Uncompressed public key", Required: true},
				},
				Action: runVerify,
			},
		},
	}
}

// env is the per-invocation state shared by the actions.
type env struct {
	cfg *Config
	log logging.Logger
	out io.Writer
}

func setup(c *cli.Command) (*env, error) {
	flags := overrides{}
	if c.IsSet("log-level") {
		flags["log_level"] = c.String("log-level")
	}
	if c.IsSet("encoding") {
		flags["encoding"] = c.String("encoding")
	}
	cfg, err := loadConfig(c.String("config"), flags)
	if err != nil {
		return nil, err
	}
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}

	root := c.Root()
	out, errOut := root.Writer, root.ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	log := logging.NewText(errOut, level).With("command", c.Name)
	return &env{cfg: cfg, log: log, out: out}, nil
}

func (e *env) decode(c *cli.Command, flag string) ([]byte, error) {
	b, err := e.cfg.decode(c.String(flag))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return b, nil
}

func (e *env) publicKey(c *cli.Command, flag string) (ecdsasecp256k1.PublicKeyBytes, error) {
	raw, err := e.decode(c, flag)
	if err != nil {
		return ecdsasecp256k1.PublicKeyBytes{}, err
	}
	return ecdsasecp256k1.PublicKeyBytesFromSlice(raw)
}

func runOID(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	id := ecdsasecp256k1.AlgorithmIdentifier()
	_, err = fmt.Fprintf(e.out, "algorithm: %s\nparameters: %s\n", id.Algorithm, id.Parameters)
	return err
}

func runVersion(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.out, "basicsig %s\n%s %s\n",
		basicsig.LibraryVersion(), basicsig.PrimitiveModule, basicsig.PrimitiveVersion())
	return err
}

func runPubkeyFromDER(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	in, err := e.decode(c, "in")
	if err != nil {
		return err
	}
	pk, err := ecdsasecp256k1.PublicKeyFromDER(in)
	if err != nil {
		return err
	}
	e.log.Debug(ctx, "decoded public key", logging.Public("pubkey", pk[:]))
	_, err = fmt.Fprintln(e.out, e.cfg.encode(pk[:]))
	return err
}

func runPubkeyToDER(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	pk, err := e.publicKey(c, "key")
	if err != nil {
		return err
	}
	der, err := ecdsasecp256k1.PublicKeyToDER(pk)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, e.cfg.encode(der))
	return err
}

func runSign(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	pk, err := e.publicKey(c, "pubkey")
	if err != nil {
		return err
	}
	msg, err := e.decode(c, "message")
	if err != nil {
		return err
	}

	sk, err := loadSecretKey(c.String("secret-file"), pk)
	if err != nil {
		return err
	}
	defer sk.Zeroize()

	sig, err := ecdsasecp256k1.Sign(msg, sk)
	if err != nil {
		return err
	}
	e.log.Info(ctx, "signed message",
		logging.Public("pubkey", pk[:]),
		logging.Redacted("secret"),
		"message_len", len(msg))
	_, err = fmt.Fprintln(e.out, e.cfg.encode(sig[:]))
	return err
}

func runVerify(ctx context.Context, c *cli.Command) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	rawSig, err := e.decode(c, "sig")
	if err != nil {
		return err
	}
	sig, err := ecdsasecp256k1.SignatureBytesFromSlice(rawSig)
	if err != nil {
		return err
	}
	pk, err := e.publicKey(c, "pubkey")
	if err != nil {
		return err
	}
	msg, err := e.decode(c, "message")
	if err != nil {
		return err
	}

	if err := ecdsasecp256k1.Verify(sig, msg, pk); err != nil {
		e.log.Warn(ctx, "signature rejected", logging.Public("pubkey", pk[:]), "error", err)
		return err
	}
	_, err = fmt.Fprintln(e.out, "OK")
	return err
}

// loadSecretKey reads a hex scalar from path and builds the secret key for
// pk. Every intermediate copy of the scalar is wiped before returning.
func loadSecretKey(path string, pk ecdsasecp256k1.PublicKeyBytes) (*ecdsasecp256k1.SecretKeyBytes, error) {
	absPath, err := securePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	f, err := os.Open(absPath) // #nosec G304 -- absPath validated by securePath
	if err != nil {
		return nil, fmt.Errorf("open secret file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, maxSecretFileSize+1)
	defer basicsig.ZeroizeBytes(buf)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read secret file: %w", err)
	}
	if n > maxSecretFileSize {
		return nil, fmt.Errorf("secret file exceeds %d bytes", maxSecretFileSize)
	}

	text := bytes.TrimPrefix(bytes.TrimSpace(buf[:n]), []byte("0x"))
	if len(text) == 0 {
		return nil, errNoSecret
	}
	scalar := make([]byte, len(text)/2+1)
	defer basicsig.ZeroizeBytes(scalar)
	m, err := hex.Decode(scalar, text)
	if err != nil {
		return nil, errors.New("secret file is not valid hex")
	}
	return ecdsasecp256k1.SecretKeyFromComponents(scalar[:m], pk)
}
