// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads container definitions from YAML files.
//
// A definitions file configures a Builder:
//
//	autowire: true
//	annotations: false
//
//	forced:
//	  dsn: ${DATABASE_URL}
//
//	params:
//	  mail.SMTP:
//	    host: ${SMTP_HOST:localhost}
//	    1: 2525
//
//	setters:
//	  mail.Sender:
//	    SetRetries: 3
//	  mail.Mailer:
//	    SetSignature: "-- the team"
//
//	services:
//	  mailer:
//	    $new: mail.Mailer
//	    params:
//	      transport: {$get: smtp}
//
//	aliases:
//	  Mailer: mailer
//
// Params are keyed by parameter name, or by position when the key is an
// integer. Setters are applied in the order they appear.
//
// Values
//
// A map holding a $new key references a new instance of the named type,
// constructed with the optional params and setters of the map. A map
// holding a $get key references a container entry. Any other value is used
// as is.
//
// Environment variables
//
// String values may refer to environment variables as ${NAME} or $NAME.
// ${NAME:default} falls back to default when NAME is not set; a reference
// to an unset variable without a default is an error. $$ is a literal $.
//
// Variables are looked up in the process environment first, then in the
// .env files given with DotEnv, in order. A value made of a single
// reference reads as a number or a boolean when it is one, so that ${PORT}
// can bind an integer.
//
// Merging
//
// Files are merged in the order they are given. Maps are merged deeply and
// any other value of a later file replaces the earlier one. Keys keep the
// position of their first appearance.
package config
