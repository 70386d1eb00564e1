package dnssd

import (
	"encoding/binary"
	"fmt"
)

type (
	//ServiceRef is an opaque connection handle owned by the external library.
	ServiceRef uintptr
	//RecordRef is an opaque record handle, obtained from AddRecord.
	RecordRef uintptr
	//Flags is DNSServiceFlags.
	Flags uint32
	//ErrorType is DNSServiceErrorType, the status code of most operations.
	ErrorType int32
	//TXTRecordRef is the opaque storage for a TXT record under construction.
	//
	//Its content belongs to the external library; it must not be copied while in use.
	TXTRecordRef struct {
		_ [0]uint64
		_ [16]byte
	}
)

const (
	FlagsMoreComing          Flags = 0x1
	FlagsAdd                 Flags = 0x2
	FlagsDefault             Flags = 0x4
	FlagsNoAutoRename        Flags = 0x8
	FlagsShared              Flags = 0x10
	FlagsUnique              Flags = 0x20
	FlagsBrowseDomains       Flags = 0x40
	FlagsRegistrationDomains Flags = 0x80
	FlagsLongLivedQuery      Flags = 0x100
	FlagsAllowRemoteQuery    Flags = 0x200
	FlagsForceMulticast      Flags = 0x400
	FlagsShareConnection     Flags = 0x4000
)

const (
	InterfaceIndexAny       uint32 = 0
	InterfaceIndexLocalOnly uint32 = 0xFFFFFFFF
	// MaxDomainName is the size of the buffer ConstructFullName writes into.
	MaxDomainName = 1009
)

// ErrUnavailable is returned by every status operation whose entry point could not be bound.
// Vendor codes live in -65537...-65568, so it never collides with a real status.
const ErrUnavailable ErrorType = -1

const (
	NoError                   ErrorType = 0
	ErrUnknown                ErrorType = -65537
	ErrNoSuchName             ErrorType = -65538
	ErrNoMemory               ErrorType = -65539
	ErrBadParam               ErrorType = -65540
	ErrBadReference           ErrorType = -65541
	ErrBadState               ErrorType = -65542
	ErrBadFlags               ErrorType = -65543
	ErrUnsupported            ErrorType = -65544
	ErrNotInitialized         ErrorType = -65545
	ErrAlreadyRegistered      ErrorType = -65547
	ErrNameConflict           ErrorType = -65548
	ErrInvalid                ErrorType = -65549
	ErrFirewall               ErrorType = -65550
	ErrIncompatible           ErrorType = -65551
	ErrBadInterfaceIndex      ErrorType = -65552
	ErrRefused                ErrorType = -65553
	ErrNoSuchRecord           ErrorType = -65554
	ErrNoAuth                 ErrorType = -65555
	ErrNoSuchKey              ErrorType = -65556
	ErrNATTraversal           ErrorType = -65557
	ErrDoubleNAT              ErrorType = -65558
	ErrBadTime                ErrorType = -65559
	ErrBadSig                 ErrorType = -65560
	ErrBadKey                 ErrorType = -65561
	ErrTransient              ErrorType = -65562
	ErrServiceNotRunning      ErrorType = -65563
	ErrNATPortMappingUnsup    ErrorType = -65564
	ErrNATPortMappingDisabled ErrorType = -65565
	ErrNoRouter               ErrorType = -65566
	ErrPollingMode            ErrorType = -65567
	ErrTimeout                ErrorType = -65568
)

var errorNames = map[ErrorType]string{
	NoError:                   "no error",
	ErrUnavailable:            "dns-sd library unavailable",
	ErrUnknown:                "unknown",
	ErrNoSuchName:             "no such name",
	ErrNoMemory:               "no memory",
	ErrBadParam:               "bad param",
	ErrBadReference:           "bad reference",
	ErrBadState:               "bad state",
	ErrBadFlags:               "bad flags",
	ErrUnsupported:            "unsupported",
	ErrNotInitialized:         "not initialized",
	ErrAlreadyRegistered:      "already registered",
	ErrNameConflict:           "name conflict",
	ErrInvalid:                "invalid",
	ErrFirewall:               "firewall",
	ErrIncompatible:           "incompatible",
	ErrBadInterfaceIndex:      "bad interface index",
	ErrRefused:                "refused",
	ErrNoSuchRecord:           "no such record",
	ErrNoAuth:                 "no auth",
	ErrNoSuchKey:              "no such key",
	ErrNATTraversal:           "nat traversal",
	ErrDoubleNAT:              "double nat",
	ErrBadTime:                "bad time",
	ErrBadSig:                 "bad signature",
	ErrBadKey:                 "bad key",
	ErrTransient:              "transient",
	ErrServiceNotRunning:      "service not running",
	ErrNATPortMappingUnsup:    "nat port mapping unsupported",
	ErrNATPortMappingDisabled: "nat port mapping disabled",
	ErrNoRouter:               "no router",
	ErrPollingMode:            "polling mode",
	ErrTimeout:                "timeout",
}

func (e ErrorType) Error() string {
	if s, ok := errorNames[e]; ok {
		return "dnssd: " + s
	}
	return fmt.Sprintf("dnssd: error %d", int32(e))
}

// Err returns nil for NoError, otherwise the status itself.
func (e ErrorType) Err() error {
	if e == NoError {
		return nil
	}
	return e
}

// NetworkPort converts a host order port into the network byte order Register expects.
func NetworkPort(port uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], port)
	return binary.NativeEndian.Uint16(b[:])
}
