package main

// #include <jni.h>
import "C"

import "github.com/callumcoles/javatoc/greeting"

func main() {} // required by -buildmode=c-shared

// Java_JavaToC_helloC backs `private native void helloC()` on class JavaToC.
//
//export Java_JavaToC_helloC
func Java_JavaToC_helloC(env *C.JNIEnv, javaobj C.jobject) {
	greeting.Print()
}
