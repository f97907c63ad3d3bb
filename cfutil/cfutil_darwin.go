//go:build darwin

// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package cfutil

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"

	"github.com/axtrust/axtrust/fref"
)

const (
	pathCoreFoundation      = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"
	pathApplicationServices = "/System/Library/Frameworks/ApplicationServices.framework/ApplicationServices"
	pathAppKit              = "/System/Library/Frameworks/AppKit.framework/AppKit"
	pathLibObjc             = "/usr/lib/libobjc.A.dylib"

	kCFStringEncodingUTF8 uint32 = 0x08000100
)

var (
	loadOnce sync.Once
	loadErr  error

	cfRetain                          func(uintptr) uintptr
	cfRelease                         func(uintptr)
	cfGetRetainCount                  func(uintptr) int64
	cfDictionaryCreate                func(alloc uintptr, keys, values unsafe.Pointer, count int64, keyCallbacks, valueCallbacks uintptr) uintptr
	cfStringCreateWithCString         func(alloc uintptr, s string, encoding uint32) uintptr
	cfStringGetLength                 func(uintptr) int64
	cfStringGetMaximumSizeForEncoding func(length int64, encoding uint32) int64
	cfStringGetCString                func(str uintptr, buf unsafe.Pointer, size int64, encoding uint32) bool
	cfArrayGetCount                   func(uintptr) int64
	cfArrayGetValueAtIndex            func(uintptr, int64) uintptr
	axIsProcessTrustedWithOptions     func(uintptr) bool
	autoreleasePoolPush               func() uintptr
	autoreleasePoolPop                func(uintptr)

	promptConstant fref.Ref
	booleanTrue    fref.Ref
	booleanFalse   fref.Ref

	appClass            objc.Class
	selRunningApps      objc.SEL
	selProcessIdent     objc.SEL
	selLocalizedNameOfA objc.SEL
)

// Bridge implements fref.System, ax.Framework, and apps.Registry over the
// system accessibility frameworks.
type Bridge struct{}

// Available reports whether the foreign frameworks can be loaded here.
func Available() bool { return true }

// New loads the system frameworks on first use and returns a Bridge.
func New() (*Bridge, error) {
	loadOnce.Do(func() { loadErr = load() })
	if loadErr != nil {
		return nil, fmt.Errorf("cfutil: %w", loadErr)
	}
	return &Bridge{}, nil
}

func load() error {
	cf, err := purego.Dlopen(pathCoreFoundation, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	appServices, err := purego.Dlopen(pathApplicationServices, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}
	// AppKit registers NSRunningApplication with the runtime.
	if _, err := purego.Dlopen(pathAppKit, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
		return err
	}
	libobjc, err := purego.Dlopen(pathLibObjc, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return err
	}

	purego.RegisterLibFunc(&cfRetain, cf, "CFRetain")
	purego.RegisterLibFunc(&cfRelease, cf, "CFRelease")
	purego.RegisterLibFunc(&cfGetRetainCount, cf, "CFGetRetainCount")
	purego.RegisterLibFunc(&cfDictionaryCreate, cf, "CFDictionaryCreate")
	purego.RegisterLibFunc(&cfStringCreateWithCString, cf, "CFStringCreateWithCString")
	purego.RegisterLibFunc(&cfStringGetLength, cf, "CFStringGetLength")
	purego.RegisterLibFunc(&cfStringGetMaximumSizeForEncoding, cf, "CFStringGetMaximumSizeForEncoding")
	purego.RegisterLibFunc(&cfStringGetCString, cf, "CFStringGetCString")
	purego.RegisterLibFunc(&cfArrayGetCount, cf, "CFArrayGetCount")
	purego.RegisterLibFunc(&cfArrayGetValueAtIndex, cf, "CFArrayGetValueAtIndex")
	purego.RegisterLibFunc(&axIsProcessTrustedWithOptions, appServices, "AXIsProcessTrustedWithOptions")
	purego.RegisterLibFunc(&autoreleasePoolPush, libobjc, "objc_autoreleasePoolPush")
	purego.RegisterLibFunc(&autoreleasePoolPop, libobjc, "objc_autoreleasePoolPop")

	if promptConstant, err = derefConstant(appServices, "kAXTrustedCheckOptionPrompt"); err != nil {
		return err
	}
	if booleanTrue, err = derefConstant(cf, "kCFBooleanTrue"); err != nil {
		return err
	}
	if booleanFalse, err = derefConstant(cf, "kCFBooleanFalse"); err != nil {
		return err
	}

	appClass = objc.GetClass("NSRunningApplication")
	if appClass == 0 {
		return fmt.Errorf("NSRunningApplication class not registered")
	}
	selRunningApps = objc.RegisterName("runningApplicationsWithBundleIdentifier:")
	selProcessIdent = objc.RegisterName("processIdentifier")
	selLocalizedNameOfA = objc.RegisterName("localizedName")

	return nil
}

// derefConstant resolves an exported framework global and reads the
// reference it holds.
func derefConstant(lib uintptr, name string) (fref.Ref, error) {
	addr, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, fmt.Errorf("resolving %s: %w", name, err)
	}
	return fref.Ref(*(*uintptr)(unsafe.Pointer(addr))), nil
}

// Retain increments the Core Foundation retain count.
func (b *Bridge) Retain(ref fref.Ref) fref.Ref {
	return fref.Ref(cfRetain(uintptr(ref)))
}

// Release decrements the Core Foundation retain count.
func (b *Bridge) Release(ref fref.Ref) {
	cfRelease(uintptr(ref))
}

// Count returns the Core Foundation retain count.
func (b *Bridge) Count(ref fref.Ref) int64 {
	return cfGetRetainCount(uintptr(ref))
}

// TrustedCheckOptionPrompt returns kAXTrustedCheckOptionPrompt.
func (b *Bridge) TrustedCheckOptionPrompt() fref.Ref {
	return promptConstant
}

// Boolean returns kCFBooleanTrue or kCFBooleanFalse.
func (b *Bridge) Boolean(v bool) fref.Ref {
	if v {
		return booleanTrue
	}
	return booleanFalse
}

// CreateOptions builds a CFDictionary from parallel key/value lists. The
// result is owned by the caller, or null on failure.
func (b *Bridge) CreateOptions(keys, values []fref.Ref) fref.Ref {
	if len(keys) == 0 || len(keys) != len(values) {
		return 0
	}
	k := make([]uintptr, len(keys))
	v := make([]uintptr, len(values))
	for i := range keys {
		k[i] = uintptr(keys[i])
		v[i] = uintptr(values[i])
	}
	// A nil allocator selects the default; the constant keys and values
	// outlive the dictionary, so no callbacks are needed.
	return fref.Ref(cfDictionaryCreate(0, unsafe.Pointer(&k[0]), unsafe.Pointer(&v[0]), int64(len(k)), 0, 0))
}

// IsProcessTrusted queries AXIsProcessTrustedWithOptions.
func (b *Bridge) IsProcessTrusted(options fref.Ref) bool {
	return axIsProcessTrustedWithOptions(uintptr(options))
}

// CreateString builds a CFString from text. Owned by the caller.
func (b *Bridge) CreateString(s string) fref.Ref {
	return fref.Ref(cfStringCreateWithCString(0, s, kCFStringEncodingUTF8))
}

// CopyRunningApplications looks up running applications by bundle
// identifier. The autoreleased lookup result is retained inside a pool so
// the returned array is owned by the caller.
func (b *Bridge) CopyRunningApplications(bundleID fref.Ref) fref.Ref {
	pool := autoreleasePoolPush()
	defer autoreleasePoolPop(pool)

	arr := objc.ID(appClass).Send(selRunningApps, objc.ID(bundleID))
	if arr == 0 {
		return 0
	}
	return fref.Ref(cfRetain(uintptr(arr)))
}

// ArrayLength returns the element count of a foreign array.
func (b *Bridge) ArrayLength(list fref.Ref) int {
	return int(cfArrayGetCount(uintptr(list)))
}

// ArrayElement returns the element at index, borrowed from the array.
func (b *Bridge) ArrayElement(list fref.Ref, index int) fref.Ref {
	return fref.Ref(cfArrayGetValueAtIndex(uintptr(list), int64(index)))
}

// ProcessIdentifier returns the pid of a running application.
func (b *Bridge) ProcessIdentifier(app fref.Ref) int32 {
	return objc.Send[int32](objc.ID(app), selProcessIdent)
}

// LocalizedName returns the display name of a running application.
func (b *Bridge) LocalizedName(app fref.Ref) string {
	pool := autoreleasePoolPush()
	defer autoreleasePoolPop(pool)

	name := objc.ID(app).Send(selLocalizedNameOfA)
	if name == 0 {
		return ""
	}
	return stringFromCFString(uintptr(name))
}

func stringFromCFString(str uintptr) string {
	length := cfStringGetLength(str)
	size := cfStringGetMaximumSizeForEncoding(length, kCFStringEncodingUTF8) + 1
	buf := make([]byte, size)
	if !cfStringGetCString(str, unsafe.Pointer(&buf[0]), size, kCFStringEncodingUTF8) {
		return ""
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
