package dnssd

import (
	"fmt"
	"slices"
	"strings"
	"unsafe"

	"github.com/miekg/dns"
)

// rootHeaderLen is the wire length of an RR header owned by the root name.
const rootHeaderLen = 11

// PackRData returns the wire rdata of rr, as AddRecord and UpdateRecord expect it.
func PackRData(rr dns.RR) ([]byte, error) {
	c := dns.Copy(rr)
	c.Header().Name = "."
	buf := make([]byte, rootHeaderLen+0xFFFF)
	off, err := dns.PackRR(c, buf, 0, nil, false)
	if err != nil {
		return nil, err
	}
	return buf[rootHeaderLen:off], nil
}

// UnpackRData decodes rdata of the given type, as delivered to a QueryRecord reply.
// Empty rdata decodes to a bare header.
func UnpackRData(rrtype uint16, rdata []byte) (rr dns.RR, err error) {
	if len(rdata) > 0xFFFF {
		return nil, fmt.Errorf("rdata too long: %d", len(rdata))
	}
	h := dns.RR_Header{Name: ".", Rrtype: rrtype, Class: dns.ClassINET, Rdlength: uint16(len(rdata))}
	rr, _, err = dns.UnpackRRWithHeader(h, rdata, 0)
	return
}

// ParseTXT splits TXT record bytes into their strings.
func ParseTXT(b []byte) ([]string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	rr, err := UnpackRData(dns.TypeTXT, b)
	if err != nil {
		return nil, err
	}
	txt, ok := rr.(*dns.TXT)
	if !ok {
		return nil, fmt.Errorf("unexpected record %T", rr)
	}
	return txt.Txt, nil
}

var txtSymbols = []string{SymTXTCreate, SymTXTDeallocate, SymTXTGetBytesPtr, SymTXTGetLength, SymTXTSetValue}

// BuildTXT encodes entries through the library's TXT record operations, returning a copy of the bytes.
// Each entry is either "key=value" or a bare "key" without value. A nil d uses [Default].
func BuildTXT(d *Dispatcher, entries ...string) (b []byte, err error) {
	if d == nil {
		d = std
	}
	d.init()
	for _, s := range txtSymbols {
		if !d.bound[s] {
			return nil, fmt.Errorf("build txt: %w: %s", ErrUnavailable, s)
		}
	}
	var ref TXTRecordRef
	d.TXTRecordCreate(&ref, 0, nil)
	defer d.TXTRecordDeallocate(&ref)
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if len(v) > 0xFF {
			return nil, fmt.Errorf("build txt: value of %q exceeds 255 bytes", k)
		}
		var p unsafe.Pointer
		if ok {
			x := append([]byte(v), 0)
			p = unsafe.Pointer(&x[0])
		}
		if st := d.TXTRecordSetValue(&ref, k, uint8(len(v)), p); st != NoError {
			return nil, fmt.Errorf("build txt: set %q: %w", k, st)
		}
	}
	n := d.TXTRecordGetLength(&ref)
	p := d.TXTRecordGetBytesPtr(&ref)
	if n == 0 || p == nil {
		return []byte{}, nil
	}
	return slices.Clone(unsafe.Slice((*byte)(p), n)), nil
}
