// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package org

// parseTimestamp attempts to parse a timestamp starting at i:
// "<2024-01-15 Mon 10:00 +1w>", "[2024-01-15]", a time range
// "<2024-01-15 10:00-11:00>", or a date range
// "<2024-01-15>--<2024-01-17>". Components are recorded as written;
// out-of-range dates are not rejected here. next is the offset just
// past the closing bracket.
func parseTimestamp(src []byte, i, limit int) (f *TimestampFields, next int, ok bool) {
	if i >= limit {
		return nil, 0, false
	}
	var close byte
	switch src[i] {
	case '<':
		close = '>'
	case '[':
		close = ']'
	default:
		return nil, 0, false
	}
	f = &TimestampFields{
		Active:   close == '>',
		End:      Datetime{Hour: -1, Minute: -1, Dayname: NullSpan()},
		Repeater: NullSpan(),
		Delay:    NullSpan(),
	}
	open := src[i]
	start, timeEnd, next, ok := parseTimestampHalf(src, i+1, limit, close, f)
	if !ok {
		return nil, 0, false
	}
	f.Start = start
	if timeEnd.Minute >= 0 {
		f.Range = true
		f.End = start
		f.End.Hour = timeEnd.Hour
		f.End.Minute = timeEnd.Minute
	}

	// "--" joins two timestamps of the same bracket style into a range.
	if !f.Range && next+2 < limit && src[next] == '-' && src[next+1] == '-' && src[next+2] == open {
		end, _, next2, ok2 := parseTimestampHalf(src, next+3, limit, close, f)
		if ok2 {
			f.Range = true
			f.End = end
			next = next2
		}
	}
	return f, next, true
}

// parseTimestampHalf parses one bracketed timestamp body from just
// after the opening bracket to just after close. A trailing "-H:MM"
// after the time part is returned in timeEnd (Minute is -1 when
// absent). Repeater and delay spans are recorded into f.
func parseTimestampHalf(src []byte, i, limit int, close byte, f *TimestampFields) (dt, timeEnd Datetime, next int, ok bool) {
	dt = Datetime{Hour: -1, Minute: -1, Dayname: NullSpan()}
	timeEnd = Datetime{Hour: -1, Minute: -1, Dayname: NullSpan()}

	dt.Year, i, ok = scanDigits(src, i, limit, 4)
	if !ok || i >= limit || src[i] != '-' {
		return dt, timeEnd, 0, false
	}
	dt.Month, i, ok = scanDigits(src, i+1, limit, 2)
	if !ok || i >= limit || src[i] != '-' {
		return dt, timeEnd, 0, false
	}
	dt.Day, i, ok = scanDigits(src, i+1, limit, 2)
	if !ok {
		return dt, timeEnd, 0, false
	}

	for {
		for i < limit && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		if i >= limit {
			return dt, timeEnd, 0, false
		}
		switch c := src[i]; {
		case c == close:
			return dt, timeEnd, i + 1, true
		case isDigit(c):
			h, m, j, tok := scanClockTime(src, i, limit)
			if !tok || dt.Hour >= 0 {
				return dt, timeEnd, 0, false
			}
			dt.Hour, dt.Minute = h, m
			i = j
			if i < limit && src[i] == '-' {
				if h2, m2, j2, tok2 := scanClockTime(src, i+1, limit); tok2 {
					timeEnd.Hour, timeEnd.Minute = h2, m2
					i = j2
				}
			}
		case c == '+' || c == '.':
			j := i + 1
			if j < limit && src[j] == '+' {
				j++
			}
			j2, tok := scanInterval(src, j, limit)
			if !tok {
				return dt, timeEnd, 0, false
			}
			f.Repeater = Span{i, j2}
			i = j2
		case c == '-':
			j := i + 1
			if j < limit && src[j] == '-' {
				j++
			}
			j2, tok := scanInterval(src, j, limit)
			if !tok {
				return dt, timeEnd, 0, false
			}
			f.Delay = Span{i, j2}
			i = j2
		default:
			// Day name: anything up to whitespace or a marker byte.
			j := i
			for j < limit && src[j] != ' ' && src[j] != '\t' && src[j] != close &&
				src[j] != '+' && src[j] != '-' && src[j] != '\n' && !isDigit(src[j]) {
				j++
			}
			if j == i || dt.Dayname.IsValid() {
				return dt, timeEnd, 0, false
			}
			dt.Dayname = Span{i, j}
			i = j
		}
	}
}

// scanDigits reads exactly want ASCII digits.
func scanDigits(src []byte, i, limit, want int) (value, next int, ok bool) {
	j := i
	for j < limit && j-i < want && isDigit(src[j]) {
		value = value*10 + int(src[j]-'0')
		j++
	}
	if j-i != want {
		return 0, i, false
	}
	return value, j, true
}

// scanClockTime reads "H:MM" or "HH:MM".
func scanClockTime(src []byte, i, limit int) (hour, minute, next int, ok bool) {
	j := i
	for j < limit && j-i < 2 && isDigit(src[j]) {
		hour = hour*10 + int(src[j]-'0')
		j++
	}
	if j == i || j >= limit || src[j] != ':' {
		return 0, 0, i, false
	}
	minute, j, ok = scanDigits(src, j+1, limit, 2)
	if !ok {
		return 0, 0, i, false
	}
	return hour, minute, j, true
}

// scanInterval reads the "N[hdwmy]" tail of a repeater or delay.
func scanInterval(src []byte, i, limit int) (next int, ok bool) {
	j := i
	for j < limit && isDigit(src[j]) {
		j++
	}
	if j == i || j >= limit {
		return i, false
	}
	switch src[j] {
	case 'h', 'd', 'w', 'm', 'y':
		return j + 1, true
	}
	return i, false
}
