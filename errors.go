/*
 * errors.go, part of golatt.
 *
 * Copyright 2022 The golatt authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package latt

import "fmt"

//Errer is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error without
//changing its type or wrapping it around something else. The decoration slice
//should contain a list of the functions in the calling stack plus, for each
//function, any relevant information, or nothing. If passed an empty string,
//Decorate should just return the current value, not add the empty string to
//the slice.
type Errer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//Error is the basic error of the latt package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//ConfigurationError is returned when an operation requires a setup step that
//has not been performed, say, computing shell distances on a lattice with no
//atoms in its basis. It carries a hint naming the missing step. These errors
//are always critical: they signal wrong use of the library, not a condition
//worth retrying.
type ConfigurationError struct {
	message string
	hint    string
	deco    []string
}

//Error returns the error message followed by the hint, if there is one.
func (err ConfigurationError) Error() string {
	if err.hint == "" {
		return err.message
	}
	return fmt.Sprintf("%s %s", err.message, err.hint)
}

//Hint returns the hint on the missing setup step.
func (err ConfigurationError) Hint() string { return err.hint }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err ConfigurationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical always returns true for configuration errors.
func (err ConfigurationError) Critical() bool { return true }

//PanicMsg is a message used for panics in the few places where failure means
//the program itself is wrong, even though it does satisfy the error
//interface. For recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//errDecorate asserts that err implements Errer and decorates it with the
//caller's name before returning it. It panics if given any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Errer)
	err2.Decorate(caller)
	return err2
}
