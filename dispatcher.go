package dnssd

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ZenLiuCN/fn"
)

// Dispatcher forwards every DNS-SD operation to a lazily bound library.
//
// The library is located on the first call of any operation, exactly once, whatever the outcome.
// Operations whose entry point could not be bound return a sentinel instead:
// [ErrUnavailable] for status codes, -1 for socket descriptors, nil for pointers, 0 for lengths;
// void operations are skipped.
//
// A Dispatcher is safe for concurrent use. After initialization no lock is taken.
type Dispatcher struct {
	resolver Resolver
	debug    bool
	once     sync.Once
	loaded   atomic.Bool
	t        table
	bound    map[string]bool
	err      error
	lib      Library // held for the process lifetime, never released
}

// NewDispatcher create a Dispatcher bound through r, an optional debug parameter will enable debug logging.
func NewDispatcher(r Resolver, debug ...bool) *Dispatcher {
	return &Dispatcher{
		resolver: r,
		debug:    len(debug) > 0 && debug[0],
	}
}

func (d *Dispatcher) init() {
	d.once.Do(d.load)
}

func (d *Dispatcher) load() {
	defer d.loaded.Store(true)
	d.bound = make(map[string]bool)
	lib, err := d.resolver.Open()
	if err != nil {
		if d.debug {
			log.Printf("dnssd: open library: %v", err)
		}
		d.err = err
		return
	}
	d.lib = lib
	var errs []error
	for _, e := range d.t.entries() {
		if err = lib.Bind(e.fptr, e.sym); err != nil {
			if d.debug {
				log.Printf("dnssd: %v", err)
			}
			errs = append(errs, err)
			continue
		}
		d.bound[e.sym] = true
	}
	if d.debug {
		log.Printf("dnssd: bound %d of %d entry points", len(d.bound), len(errs)+len(d.bound))
	}
	d.err = errors.Join(errs...)
}

// Loaded reports whether the library lookup has already run.
func (d *Dispatcher) Loaded() bool {
	return d.loaded.Load()
}

// Bound lists the resolved entry points, sorted.
func (d *Dispatcher) Bound() (v []string) {
	d.init()
	v = fn.MapKeys(d.bound)
	slices.Sort(v)
	return
}

// Missing lists the entry points that could not be resolved, sorted.
func (d *Dispatcher) Missing() (v []string) {
	d.init()
	for _, s := range Symbols() {
		if !d.bound[s] {
			v = append(v, s)
		}
	}
	slices.Sort(v)
	return
}

// Err returns why the library or some of its entry points are unavailable, nil when all are bound.
func (d *Dispatcher) Err() error {
	d.init()
	return d.err
}

// String describes the binding state.
func (d *Dispatcher) String() string {
	if !d.Loaded() {
		return "dnssd.Dispatcher{uninitialized}"
	}
	return fmt.Sprintf("dnssd.Dispatcher{bound: %d, missing: %v}", len(d.bound), d.Missing())
}

func (d *Dispatcher) AddRecord(sd ServiceRef, rec *RecordRef, flags Flags, rrtype, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType {
	d.init()
	if d.t.addRecord == nil {
		return ErrUnavailable
	}
	return d.t.addRecord(sd, rec, flags, rrtype, rdlen, rdata, ttl)
}

// Browse for instances of regtype. domain may be empty.
func (d *Dispatcher) Browse(sd *ServiceRef, flags Flags, ifIndex uint32, regtype, domain string, callBack, context uintptr) ErrorType {
	d.init()
	if d.t.browse == nil {
		return ErrUnavailable
	}
	return d.t.browse(sd, flags, ifIndex, cstring(regtype), nullable(domain), callBack, context)
}

// ConstructFullName writes into fullName, which must hold [MaxDomainName] bytes. service may be empty.
func (d *Dispatcher) ConstructFullName(fullName *byte, service, regtype, domain string) ErrorType {
	d.init()
	if d.t.constructFullName == nil {
		return ErrUnavailable
	}
	return d.t.constructFullName(fullName, nullable(service), cstring(regtype), cstring(domain))
}

func (d *Dispatcher) CreateConnection(sd *ServiceRef) ErrorType {
	d.init()
	if d.t.createConnection == nil {
		return ErrUnavailable
	}
	return d.t.createConnection(sd)
}

func (d *Dispatcher) ProcessResult(sd ServiceRef) ErrorType {
	d.init()
	if d.t.processResult == nil {
		return ErrUnavailable
	}
	return d.t.processResult(sd)
}

func (d *Dispatcher) QueryRecord(sd *ServiceRef, flags Flags, ifIndex uint32, fullname string, rrtype, rrclass uint16, callBack, context uintptr) ErrorType {
	d.init()
	if d.t.queryRecord == nil {
		return ErrUnavailable
	}
	return d.t.queryRecord(sd, flags, ifIndex, cstring(fullname), rrtype, rrclass, callBack, context)
}

func (d *Dispatcher) RefDeallocate(sd ServiceRef) {
	d.init()
	if d.t.refDeallocate != nil {
		d.t.refDeallocate(sd)
	}
}

func (d *Dispatcher) RefSockFD(sd ServiceRef) int32 {
	d.init()
	if d.t.refSockFD == nil {
		return -1
	}
	return d.t.refSockFD(sd)
}

// Register a service. name, domain and host may be empty; port is in network byte order, see [NetworkPort].
func (d *Dispatcher) Register(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain, host string, port, txtLen uint16, txtRecord unsafe.Pointer, callBack, context uintptr) ErrorType {
	d.init()
	if d.t.register == nil {
		return ErrUnavailable
	}
	return d.t.register(sd, flags, ifIndex, nullable(name), cstring(regtype), nullable(domain), nullable(host), port, txtLen, txtRecord, callBack, context)
}

func (d *Dispatcher) RemoveRecord(sd ServiceRef, rec RecordRef, flags Flags) ErrorType {
	d.init()
	if d.t.removeRecord == nil {
		return ErrUnavailable
	}
	return d.t.removeRecord(sd, rec, flags)
}

func (d *Dispatcher) Resolve(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain string, callBack, context uintptr) ErrorType {
	d.init()
	if d.t.resolve == nil {
		return ErrUnavailable
	}
	return d.t.resolve(sd, flags, ifIndex, cstring(name), cstring(regtype), cstring(domain), callBack, context)
}

// UpdateRecord replaces rdata of rec, or of the primary TXT record when rec is 0.
func (d *Dispatcher) UpdateRecord(sd ServiceRef, rec RecordRef, flags Flags, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType {
	d.init()
	if d.t.updateRecord == nil {
		return ErrUnavailable
	}
	return d.t.updateRecord(sd, rec, flags, rdlen, rdata, ttl)
}

func (d *Dispatcher) TXTRecordCreate(txt *TXTRecordRef, bufferLen uint16, buffer unsafe.Pointer) {
	d.init()
	if d.t.txtCreate != nil {
		d.t.txtCreate(txt, bufferLen, buffer)
	}
}

func (d *Dispatcher) TXTRecordDeallocate(txt *TXTRecordRef) {
	d.init()
	if d.t.txtDeallocate != nil {
		d.t.txtDeallocate(txt)
	}
}

func (d *Dispatcher) TXTRecordGetBytesPtr(txt *TXTRecordRef) unsafe.Pointer {
	d.init()
	if d.t.txtGetBytesPtr == nil {
		return nil
	}
	return d.t.txtGetBytesPtr(txt)
}

func (d *Dispatcher) TXTRecordGetLength(txt *TXTRecordRef) uint16 {
	d.init()
	if d.t.txtGetLength == nil {
		return 0
	}
	return d.t.txtGetLength(txt)
}

// TXTRecordSetValue adds or replaces key. value may be nil, which differs from an empty value.
func (d *Dispatcher) TXTRecordSetValue(txt *TXTRecordRef, key string, valueSize uint8, value unsafe.Pointer) ErrorType {
	d.init()
	if d.t.txtSetValue == nil {
		return ErrUnavailable
	}
	return d.t.txtSetValue(txt, cstring(key), valueSize, value)
}
