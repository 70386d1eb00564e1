package dnssd

import (
	"os"
	"unsafe"
)

// EnvDebug enables debug logging of the process-wide Dispatcher when non-empty.
const EnvDebug = "DNSSD_DEBUG"

var std = NewDispatcher(NewSystemResolver(), os.Getenv(EnvDebug) != "")

// Default returns the process-wide Dispatcher backing the package level functions.
func Default() *Dispatcher {
	return std
}

func AddRecord(sd ServiceRef, rec *RecordRef, flags Flags, rrtype, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType {
	return std.AddRecord(sd, rec, flags, rrtype, rdlen, rdata, ttl)
}
func Browse(sd *ServiceRef, flags Flags, ifIndex uint32, regtype, domain string, callBack, context uintptr) ErrorType {
	return std.Browse(sd, flags, ifIndex, regtype, domain, callBack, context)
}
func ConstructFullName(fullName *byte, service, regtype, domain string) ErrorType {
	return std.ConstructFullName(fullName, service, regtype, domain)
}
func CreateConnection(sd *ServiceRef) ErrorType {
	return std.CreateConnection(sd)
}
func ProcessResult(sd ServiceRef) ErrorType {
	return std.ProcessResult(sd)
}
func QueryRecord(sd *ServiceRef, flags Flags, ifIndex uint32, fullname string, rrtype, rrclass uint16, callBack, context uintptr) ErrorType {
	return std.QueryRecord(sd, flags, ifIndex, fullname, rrtype, rrclass, callBack, context)
}
func RefDeallocate(sd ServiceRef) {
	std.RefDeallocate(sd)
}
func RefSockFD(sd ServiceRef) int32 {
	return std.RefSockFD(sd)
}
func Register(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain, host string, port, txtLen uint16, txtRecord unsafe.Pointer, callBack, context uintptr) ErrorType {
	return std.Register(sd, flags, ifIndex, name, regtype, domain, host, port, txtLen, txtRecord, callBack, context)
}
func RemoveRecord(sd ServiceRef, rec RecordRef, flags Flags) ErrorType {
	return std.RemoveRecord(sd, rec, flags)
}
func Resolve(sd *ServiceRef, flags Flags, ifIndex uint32, name, regtype, domain string, callBack, context uintptr) ErrorType {
	return std.Resolve(sd, flags, ifIndex, name, regtype, domain, callBack, context)
}
func UpdateRecord(sd ServiceRef, rec RecordRef, flags Flags, rdlen uint16, rdata unsafe.Pointer, ttl uint32) ErrorType {
	return std.UpdateRecord(sd, rec, flags, rdlen, rdata, ttl)
}
func TXTRecordCreate(txt *TXTRecordRef, bufferLen uint16, buffer unsafe.Pointer) {
	std.TXTRecordCreate(txt, bufferLen, buffer)
}
func TXTRecordDeallocate(txt *TXTRecordRef) {
	std.TXTRecordDeallocate(txt)
}
func TXTRecordGetBytesPtr(txt *TXTRecordRef) unsafe.Pointer {
	return std.TXTRecordGetBytesPtr(txt)
}
func TXTRecordGetLength(txt *TXTRecordRef) uint16 {
	return std.TXTRecordGetLength(txt)
}
func TXTRecordSetValue(txt *TXTRecordRef, key string, valueSize uint8, value unsafe.Pointer) ErrorType {
	return std.TXTRecordSetValue(txt, key, valueSize, value)
}
