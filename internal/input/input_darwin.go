//go:build darwin

package input

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#import <ApplicationServices/ApplicationServices.h>
#import <Foundation/Foundation.h>
#include <stdlib.h>

void typeText(const char* text) {
    NSString *str = [NSString stringWithUTF8String:text];

    // Символы вне BMP приходят суррогатной парой, отправляем её одним событием.
    NSUInteger i = 0;
    while (i < [str length]) {
        unichar buf[2];
        UniCharCount n = 1;
        buf[0] = [str characterAtIndex:i];
        if (CFStringIsSurrogateHighCharacter(buf[0]) && i+1 < [str length]) {
            buf[1] = [str characterAtIndex:i+1];
            n = 2;
        }

        CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, 0, true);
        CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, 0, false);

        CGEventKeyboardSetUnicodeString(keyDown, n, buf);
        CGEventKeyboardSetUnicodeString(keyUp, n, buf);

        CGEventPost(kCGHIDEventTap, keyDown);
        CGEventPost(kCGHIDEventTap, keyUp);

        CFRelease(keyDown);
        CFRelease(keyUp);

        i += n;
    }
}

void commandChord(CGKeyCode code) {
    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, code, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, code, false);

    CGEventSetFlags(keyDown, kCGEventFlagMaskCommand);
    CGEventSetFlags(keyUp, kCGEventFlagMaskCommand);

    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);

    CFRelease(keyDown);
    CFRelease(keyUp);
}
*/
import "C"
import "unsafe"

// Виртуальные коды клавиш ANSI-раскладки.
const (
	keyCodeC = 8
	keyCodeV = 9
)

type darwinKeyboard struct{}

func newKeyboard() (Keyboard, error) {
	return &darwinKeyboard{}, nil
}

func (k *darwinKeyboard) Type(text string) error {
	cstr := C.CString(text)
	defer C.free(unsafe.Pointer(cstr))
	C.typeText(cstr)
	return nil
}

func (k *darwinKeyboard) Copy() error {
	C.commandChord(C.CGKeyCode(keyCodeC))
	return nil
}

func (k *darwinKeyboard) Paste() error {
	C.commandChord(C.CGKeyCode(keyCodeV))
	return nil
}
