package dnssd

import (
	"errors"
	"unsafe"
)

// Entry point names exported by the DNS-SD client library.
const (
	SymAddRecord         = "DNSServiceAddRecord"
	SymBrowse            = "DNSServiceBrowse"
	SymConstructFullName = "DNSServiceConstructFullName"
	SymCreateConnection  = "DNSServiceCreateConnection"
	SymProcessResult     = "DNSServiceProcessResult"
	SymQueryRecord       = "DNSServiceQueryRecord"
	SymRefDeallocate     = "DNSServiceRefDeallocate"
	SymRefSockFD         = "DNSServiceRefSockFD"
	SymRegister          = "DNSServiceRegister"
	SymRemoveRecord      = "DNSServiceRemoveRecord"
	SymResolve           = "DNSServiceResolve"
	SymUpdateRecord      = "DNSServiceUpdateRecord"
	SymTXTCreate         = "TXTRecordCreate"
	SymTXTDeallocate     = "TXTRecordDeallocate"
	SymTXTGetBytesPtr    = "TXTRecordGetBytesPtr"
	SymTXTGetLength      = "TXTRecordGetLength"
	SymTXTSetValue       = "TXTRecordSetValue"
)

var (
	// ErrMissingSymbol occurs when the library does not export an entry point.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrLibraryNotFound occurs when none of the candidate library names can be opened.
	ErrLibraryNotFound = errors.New("dns-sd library not found")
	// ErrUnsupportedPlatform occurs when this platform has no dynamic loader support.
	ErrUnsupportedPlatform = errors.New("dynamic loading unsupported on this platform")
)

type (
	// table holds one optional callable per entry point, nil when unresolved.
	//
	// C strings are *byte, NULL being nil. Callbacks and contexts are raw addresses.
	table struct {
		addRecord         func(sd ServiceRef, rec *RecordRef, flags Flags, rrtype, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType
		browse            func(sd *ServiceRef, flags Flags, ifIndex uint32, regtype, domain *byte, callBack, context uintptr) ErrorType
		constructFullName func(fullName, service, regtype, domain *byte) ErrorType
		createConnection  func(sd *ServiceRef) ErrorType
		processResult     func(sd ServiceRef) ErrorType
		queryRecord       func(sd *ServiceRef, flags Flags, ifIndex uint32, fullname *byte, rrtype, rrclass uint16, callBack, context uintptr) ErrorType
		refDeallocate     func(sd ServiceRef)
		refSockFD         func(sd ServiceRef) int32
		register          func(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain, host *byte, port, txtLen uint16, txtRecord unsafe.Pointer, callBack, context uintptr) ErrorType
		removeRecord      func(sd ServiceRef, rec RecordRef, flags Flags) ErrorType
		resolve           func(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain *byte, callBack, context uintptr) ErrorType
		updateRecord      func(sd ServiceRef, rec RecordRef, flags Flags, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType
		txtCreate         func(txt *TXTRecordRef, bufferLen uint16, buffer unsafe.Pointer)
		txtDeallocate     func(txt *TXTRecordRef)
		txtGetBytesPtr    func(txt *TXTRecordRef) unsafe.Pointer
		txtGetLength      func(txt *TXTRecordRef) uint16
		txtSetValue       func(txt *TXTRecordRef, key *byte, valueSize uint8, value unsafe.Pointer) ErrorType
	}
	entry struct {
		sym  string
		fptr any
	}
)

// entries pairs every symbol with the field it binds to, in the order they are resolved.
func (t *table) entries() []entry {
	return []entry{
		{SymAddRecord, &t.addRecord},
		{SymBrowse, &t.browse},
		{SymConstructFullName, &t.constructFullName},
		{SymCreateConnection, &t.createConnection},
		{SymRefDeallocate, &t.refDeallocate},
		{SymProcessResult, &t.processResult},
		{SymQueryRecord, &t.queryRecord},
		{SymRegister, &t.register},
		{SymRemoveRecord, &t.removeRecord},
		{SymResolve, &t.resolve},
		{SymRefSockFD, &t.refSockFD},
		{SymUpdateRecord, &t.updateRecord},
		{SymTXTCreate, &t.txtCreate},
		{SymTXTDeallocate, &t.txtDeallocate},
		{SymTXTGetBytesPtr, &t.txtGetBytesPtr},
		{SymTXTGetLength, &t.txtGetLength},
		{SymTXTSetValue, &t.txtSetValue},
	}
}

// Symbols lists every entry point name the dispatcher tries to resolve.
func Symbols() []string {
	var t table
	e := t.entries()
	s := make([]string, len(e))
	for i, x := range e {
		s[i] = x.sym
	}
	return s
}

// cstring returns a NUL-terminated copy of s.
func cstring(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// nullable is cstring, except the empty string becomes NULL.
func nullable(s string) *byte {
	if s == "" {
		return nil
	}
	return cstring(s)
}
